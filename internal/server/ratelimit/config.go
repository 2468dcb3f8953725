package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting settings.
type Config struct {
	Enabled         bool
	Limit           int           // requests per window
	Window          time.Duration // refill window
	Burst           int           // bucket capacity
	CleanupInterval time.Duration
}

// LoadConfig loads rate limiting configuration from environment variables,
// with defaults sized for a public portfolio site.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	limit := getEnvInt("RATE_LIMIT_LIMIT", 30)
	burst := getEnvInt("RATE_LIMIT_BURST", limit)
	return &Config{
		Enabled:         true,
		Limit:           limit,
		Window:          getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		Burst:           burst,
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
	}
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
