package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Store      string
	DumpFormat string
	LogLevel   string
	LogPretty  bool
}

// LoadConfig loads configuration from a .env file, environment variables or defaults
func LoadConfig() *Config {
	// A missing .env file is fine.
	_ = godotenv.Load()

	return &Config{
		Store:      getEnv("GUESTLIST_STORE", "memory"),
		DumpFormat: getEnv("GUESTLIST_DUMP_FORMAT", "text"),
		LogLevel:   getEnv("LOG_LEVEL", "warn"),
		LogPretty:  getEnvBool("LOG_PRETTY", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
