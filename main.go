package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tum-backend/internal/config"
	"tum-backend/internal/credentials"
	"tum-backend/internal/database"
	"tum-backend/internal/handlers"
	"tum-backend/internal/routes"
)

func main() {
	config.Load()

	var open database.OpenFunc
	switch config.AppEnv.StoreDriver {
	case config.StoreDriverMemory:
		log.Println("⚠️ using in-memory store, data is lost on exit")
		open = database.MemoryOpener(database.NewMemoryStore())
	case config.StoreDriverMongo:
		if config.AppEnv.MongoURI == "" {
			log.Fatal("DB_CONNECT is required when STORE_DRIVER=mongo")
		}
		open = database.MongoOpener(config.AppEnv.MongoURI, config.AppEnv.DBName)
	default:
		log.Fatalf("unknown STORE_DRIVER %q", config.AppEnv.StoreDriver)
	}

	// The store connects lazily on the first request that needs it.
	stores := database.NewProvider(open)

	deps := handlers.Deps{
		Stores:  stores,
		Hasher:  credentials.NewHasher(config.AppEnv.BcryptCost),
		Timeout: config.AppEnv.DBTimeout,
	}
	r := routes.NewRouter(deps, config.AppEnv.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + config.AppEnv.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", config.AppEnv.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("server shutdown error:", err)
	}
	if err := stores.Close(ctx); err != nil {
		log.Println("store close error:", err)
	}
}
