package predict

import (
	"os"
	"time"
)

// Config holds prediction service connection settings.
type Config struct {
	// BaseURL is the service root, e.g. "https://api.unimind.app".
	BaseURL string

	// Timeout bounds a single prediction request. Default: 10s.
	Timeout time.Duration

	// HealthTimeout bounds the liveness probe. Default: 5s.
	HealthTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://api.unimind.app",
		Timeout:       10 * time.Second,
		HealthTimeout: 5 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("UNIMIND_API_BASE"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("UNIMIND_PREDICT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}
