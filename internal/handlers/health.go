package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "API is working!")
	}
}

// Health reports whether the store answers a ping.
func Health(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /health"
		defer handlePanic(c, route)

		ctx, cancel := d.opContext(c)
		defer cancel()

		store, err := d.Stores.Store(ctx)
		if err == nil {
			err = store.Ping(ctx)
		}
		if err != nil {
			log.Printf("[%s] [ERROR] %v", route, err)
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}
