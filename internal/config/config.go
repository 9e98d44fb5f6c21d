package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Catalog
	CatalogPath string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string

	// Metrics
	MetricsAddr string

	// Session
	RandomSeed      int64
	SearchCacheSize int
	ShowBanner      bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		// Catalog
		CatalogPath: getEnvOrDefault("CATALOG_PATH", ""),

		// Logging
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		LogFile:   getEnvOrDefault("LOG_FILE", ""),

		// Metrics
		MetricsAddr: getEnvOrDefault("METRICS_ADDR", ""),

		// Session
		RandomSeed:      getEnvInt64("RANDOM_SEED", 0),
		SearchCacheSize: getEnvInt("SEARCH_CACHE_SIZE", 64),
		ShowBanner:      getEnvBool("SHOW_BANNER", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid LOG_FORMAT %q (expected text or json)", c.LogFormat)
	}

	if c.SearchCacheSize < 0 {
		return fmt.Errorf("SEARCH_CACHE_SIZE must not be negative, got %d", c.SearchCacheSize)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch value {
		case "true", "1", "yes", "True", "TRUE", "YES":
			return true
		case "false", "0", "no", "False", "FALSE", "NO":
			return false
		}
	}
	return defaultValue
}
