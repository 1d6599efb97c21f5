// config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDBName string
	RabbitURL   string
	SessionURL  string
	JWTSecret   string
	TokenTTL    time.Duration
	CacheSize   int
	CacheTTL    time.Duration
	Port        string
	Env         string
}

func Load() *Config {
	// Best effort; env vars win when no .env file exists.
	_ = godotenv.Load()

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "storefront_db"),
		RabbitURL:   getEnv("RABBIT_URL", "amqp://localhost"),
		SessionURL:  getEnv("SESSION_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 30*24*time.Hour),
		CacheSize:   getEnvInt("CACHE_SIZE", 512),
		CacheTTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
