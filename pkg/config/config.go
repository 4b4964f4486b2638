package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	TokenSecret string
	TokenIssuer string
	TokenTTL    time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TokenSecret: getEnv("TOKEN_SECRET", "dev-secret-change"),
		TokenIssuer: getEnv("TOKEN_ISSUER", "auth-api"),
		// Issued tokens live for a week unless revoked earlier.
		TokenTTL: getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
