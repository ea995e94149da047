package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first; real environment variables win over it.
const (
	envServerURL      = "JOBKEEPER_SERVER_URL"
	envDatabasePath   = "JOBKEEPER_DB_PATH"
	envRequestTimeout = "JOBKEEPER_REQUEST_TIMEOUT"
	envLogLevel       = "JOBKEEPER_LOG_LEVEL"
	envLogFormat      = "JOBKEEPER_LOG_FORMAT"
)

// parseEnv overlays Config with values from the environment. Unset variables
// leave the current value untouched; an unparsable timeout is ignored.
func parseEnv(cfg *Config) {
	// missing .env is not an error
	_ = godotenv.Load()

	if v := os.Getenv(envServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.LogFormat = v
	}
}
