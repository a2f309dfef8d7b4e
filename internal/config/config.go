package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type Config struct {
	MongoURI           string
	DBName             string
	Port               string
	StoreDriver        string
	BcryptCost         int
	DBTimeout          time.Duration
	CORSAllowedOrigins []string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = FromEnv()
}

// FromEnv reads the configuration from the process environment without
// touching AppEnv.
func FromEnv() Config {
	return Config{
		MongoURI:           getEnvOrDefault("DB_CONNECT", getEnvOrDefault("MONGO_URI", "")),
		DBName:             getEnvOrDefault("DB_NAME", "TUM"),
		Port:               getEnvOrDefault("PORT", "5000"),
		StoreDriver:        strings.ToLower(getEnvOrDefault("STORE_DRIVER", StoreDriverMongo)),
		BcryptCost:         getIntEnv("BCRYPT_COST", 10),
		DBTimeout:          getDurationEnv("DB_TIMEOUT", 5, time.Second),
		CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("config: ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue)) * unit
}

func getListEnv(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
