// Package config loads tool configuration from the environment, with
// optional .env support for local use.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime parameters of the tool.
type Config struct {
	LogLevel  string
	LogFormat string

	// DefaultCurrency is used when a generation request omits one.
	DefaultCurrency string
	// DefaultInitiator is the pain.001 initiating party name used when
	// none is supplied.
	DefaultInitiator string
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is merged in first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		LogLevel:         getEnv("LOG_LEVEL", "warn"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		DefaultCurrency:  getEnv("SWIFT_DEFAULT_CURRENCY", "EUR"),
		DefaultInitiator: getEnv("SWIFT_DEFAULT_INITIATOR", "CLI User"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
