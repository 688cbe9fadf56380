// Package config loads application settings from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	// DBPath is the path of the embedded SQLite database file.
	DBPath string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string
}

// LoadFromEnv reads the configuration from environment variables, falling
// back to defaults. A .env file in the working directory is loaded first
// when present.
func LoadFromEnv() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	return Config{
		DBPath:   getenv("USERAUTH_DB_PATH", "userauth.db"),
		LogLevel: getenv("USERAUTH_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
