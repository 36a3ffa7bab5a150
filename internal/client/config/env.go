package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment, after
// loading a .env file when one sits in the working directory. A missing .env
// is not an error.
//
// Recognized variables:
//
//	COACHDESK_API_URL        backend base URL
//	COACHDESK_TIMEOUT        per-request timeout, e.g. "15s"
//	COACHDESK_SEARCH_DELAY   search debounce, e.g. "500ms"
//	COACHDESK_STATE_DSN      local state database DSN
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("COACHDESK_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COACHDESK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("COACHDESK_SEARCH_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SearchDebounce = d
		}
	}
	if v := os.Getenv("COACHDESK_STATE_DSN"); v != "" {
		cfg.StateDSN = v
	}
}
