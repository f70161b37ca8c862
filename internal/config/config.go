// Package config loads runtime configuration from environment variables
// with CLI-flag overrides applied by the caller.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Scraping target
	BaseURL string
	Season  string

	// Fetch policy
	FetchTimeout time.Duration
	FetchRetries int

	// Concurrency cap for per-match report fetches
	ReportWorkers int

	// Persistence
	DBPath string

	// Logging
	LogLevel string
	Env      string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		BaseURL:       getEnv("LIGA_BASE_URL", "https://liga.dart-ergebnisse.de"),
		Season:        getEnv("LIGA_SEASON", "2025/26"),
		FetchTimeout:  getEnvDuration("LIGA_FETCH_TIMEOUT", 15*time.Second),
		FetchRetries:  getEnvInt("LIGA_FETCH_RETRIES", 0),
		ReportWorkers: getEnvInt("LIGA_REPORT_WORKERS", 4),
		DBPath:        getEnv("LIGA_DB_PATH", "~/.local/share/liga-stats/liga.db"),
		LogLevel:      getEnv("LIGA_LOG_LEVEL", "info"),
		Env:           getEnv("LIGA_ENV", "production"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
