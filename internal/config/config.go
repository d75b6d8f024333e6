package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	SessionSecret string
	DatabaseDSN   string
	HTTPPort      string
	SeedFile      string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "file:groshop.db?_pragma=busy_timeout(5000)"
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	return Config{
		SessionSecret: secret,
		DatabaseDSN:   dsn,
		HTTPPort:      port,
		SeedFile:      os.Getenv("SEED_FILE"),
	}
}
