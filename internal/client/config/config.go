// Package config assembles the client's runtime settings from, in order of
// increasing precedence: built-in defaults, environment variables (including
// a .env file), a JSON config file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the jobkeeper client.
type Config struct {
	// ServerURL is the base address of the remote record store.
	ServerURL string
	// DatabasePath is the SQLite file holding the persisted snapshots.
	DatabasePath string
	// RequestTimeout bounds each individual store call.
	RequestTimeout time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3001"
	c.DatabasePath = "jobkeeper.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays
// environment variables, the JSON config file (if any) and command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
