package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Genia Studio CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite session database.
//   - ProviderEndpoint: base URL of the content provider API.
//   - ProviderAPIKey: API key sent with provider requests.
//   - ProviderTimeout: per-call timeout for provider requests.
//   - OutputDir: directory where exported documents are written.
//   - Language: language passed to the content provider.
//
// Units: ProviderTimeout is a time.Duration (e.g., 120*time.Second).
type Config struct {
	DatabasePath     string
	ProviderEndpoint string
	ProviderAPIKey   string
	ProviderTimeout  time.Duration
	OutputDir        string
	Language         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "genia.db"
	c.ProviderEndpoint = "https://generativelanguage.googleapis.com"
	c.ProviderTimeout = 120 * time.Second
	c.OutputDir = "."
	c.Language = "français"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if one was given with -c/--config) and from the environment.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	return cfg
}

// parseEnv overlays Config with values from environment variables.
//
// Recognized variables:
//
//	GENIA_DB       — session database path
//	GENIA_API_KEY  — content provider API key
//	GENIA_ENDPOINT — content provider base URL
func parseEnv(cfg *Config) {
	if v := os.Getenv("GENIA_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("GENIA_API_KEY"); v != "" {
		cfg.ProviderAPIKey = v
	}
	if v := os.Getenv("GENIA_ENDPOINT"); v != "" {
		cfg.ProviderEndpoint = v
	}
}
