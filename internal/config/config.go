// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds settings for both entry points. The API server requires
// NewsAPIKey; the scrape binary ignores it.
type Config struct {
	// News API settings
	NewsAPIKey string
	NewsAPIURL string
	PageSize   int

	// HTTP server settings
	Port string

	// Analyzer settings
	LexiconPath string // optional override of the embedded lexicon

	// Scrape entry point settings
	ScrapeSourceURL  string
	ScrapeSourceName string
	ScrapeFeedURL    string
	ScrapeMaxItems   int
	ScrapePort       string

	// App settings
	Debug          bool
	RequestTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	cfg := &Config{
		NewsAPIURL:       "https://newsapi.org/v2/top-headlines",
		PageSize:         50,
		Port:             "8000",
		ScrapeSourceURL:  "https://www.reuters.com/world/",
		ScrapeSourceName: "Reuters",
		ScrapeMaxItems:   10,
		ScrapePort:       "8001",
		RequestTimeout:   30 * time.Second,
	}

	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	cfg.NewsAPIURL = getEnvOrDefault("NEWS_API_URL", cfg.NewsAPIURL)
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.LexiconPath = os.Getenv("LEXICON_PATH")

	cfg.ScrapeSourceURL = getEnvOrDefault("SCRAPE_SOURCE_URL", cfg.ScrapeSourceURL)
	cfg.ScrapeSourceName = getEnvOrDefault("SCRAPE_SOURCE_NAME", cfg.ScrapeSourceName)
	cfg.ScrapeFeedURL = os.Getenv("SCRAPE_FEED_URL")
	cfg.ScrapeMaxItems = getEnvIntOrDefault("SCRAPE_MAX_ITEMS", cfg.ScrapeMaxItems)
	cfg.ScrapePort = getEnvOrDefault("SCRAPE_PORT", cfg.ScrapePort)

	cfg.PageSize = getEnvIntOrDefault("PAGE_SIZE", cfg.PageSize)
	if cfg.PageSize < 1 || cfg.PageSize > 100 {
		cfg.PageSize = 50
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg
}

// Validate checks the settings the API server cannot run without.
func (c *Config) Validate() error {
	if c.NewsAPIKey == "" {
		return fmt.Errorf("NEWS_API_KEY is required")
	}
	if c.NewsAPIURL == "" {
		return fmt.Errorf("NEWS_API_URL must not be empty")
	}
	return nil
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
