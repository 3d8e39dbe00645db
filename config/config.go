package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	StorageBackend string
	SQLitePath     string
	RedisHost      string
	RedisPort      string
	Namespace      string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		StorageBackend: getEnvOrDefault("STORAGE_BACKEND", "sqlite"),
		SQLitePath:     getEnvOrDefault("SQLITE_PATH", "brandsgate.db"),
		RedisHost:      getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort:      getEnvOrDefault("REDIS_PORT", "6379"),
		Namespace:      getEnvOrDefault("STORAGE_NAMESPACE", "brandsgate"),
	}
}

// CartNamespace and OrdersNamespace are the two independent storage records:
// the cart sequence and the order sequence.
func (c Config) CartNamespace() string {
	return c.Namespace + "-cart"
}

func (c Config) OrdersNamespace() string {
	return c.Namespace + "-orders"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
