package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Store backend: "postgres" or "memory"
	StoreDriver string

	// Server
	ServerPort     string
	RequestTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "trainpass123"),
		DBName:     getEnv("DB_NAME", "trainpay"),

		StoreDriver: getEnv("STORE_DRIVER", "postgres"),

		ServerPort:     getEnv("SERVER_PORT", "8000"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 5*time.Second),
	}

	switch config.StoreDriver {
	case "postgres", "memory":
	default:
		log.Printf("WARNING: Unknown STORE_DRIVER: %s (using postgres as fallback)\n", config.StoreDriver)
		config.StoreDriver = "postgres"
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration parses a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("WARNING: Invalid %s: %q (using %s)\n", key, value, defaultValue)
		return defaultValue
	}
	return d
}
