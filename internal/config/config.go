package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Persisted tracker state
	DataFilePath string

	// Optional YAML overrides for sources and the candidate catalog
	SourcesConfigPath    string
	CandidatesConfigPath string

	// Fetcher settings
	RequestTimeout   time.Duration
	MaxRedirects     int
	FetchConcurrency int
	FetchRatePerSec  float64
	RetryAttempts    int
	RetryDelay       time.Duration

	// Pipeline settings
	FreshnessWindow time.Duration

	// Retention limits
	TimelineLimit int
	HistoryLimit  int
	NewsLogLimit  int

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		DataFilePath:         "data/tracker.json",
		SourcesConfigPath:    "configs/sources.yaml",
		CandidatesConfigPath: "configs/candidates.yaml",
		RequestTimeout:       10 * time.Second,
		MaxRedirects:         5,
		FetchConcurrency:     4,
		FetchRatePerSec:      4,
		RetryAttempts:        2,
		RetryDelay:           1 * time.Second,
		FreshnessWindow:      48 * time.Hour,
		TimelineLimit:        50,
		HistoryLimit:         90,
		NewsLogLimit:         30,
	}

	cfg.DataFilePath = getEnvOrDefault("TRACKER_DATA_PATH", cfg.DataFilePath)
	cfg.SourcesConfigPath = getEnvOrDefault("SOURCES_CONFIG_PATH", cfg.SourcesConfigPath)
	cfg.CandidatesConfigPath = getEnvOrDefault("CANDIDATES_CONFIG_PATH", cfg.CandidatesConfigPath)

	if v := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("MAX_REDIRECTS", 0); v > 0 {
		cfg.MaxRedirects = v
	}
	if v := getEnvIntOrDefault("FETCH_CONCURRENCY", 0); v > 0 {
		cfg.FetchConcurrency = v
	}
	if v := getEnvIntOrDefault("RETRY_ATTEMPTS", 0); v > 0 {
		cfg.RetryAttempts = v
	}
	if v := getEnvIntOrDefault("RETRY_DELAY_SECONDS", 0); v > 0 {
		cfg.RetryDelay = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("FRESHNESS_WINDOW_HOURS", 0); v > 0 {
		cfg.FreshnessWindow = time.Duration(v) * time.Hour
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.DataFilePath == "" {
		return fmt.Errorf("TRACKER_DATA_PATH is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.TimelineLimit <= 0 || c.HistoryLimit <= 0 || c.NewsLogLimit <= 0 {
		return fmt.Errorf("retention limits must be positive")
	}
	return nil
}
