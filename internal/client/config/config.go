package config

import "time"

// Config holds runtime settings for the CoachDesk client.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - SearchDebounce: settle delay before a search keystroke triggers a fetch.
//   - StateDSN: sqlite DSN of the local state database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SearchDebounce time.Duration
	StateDSN       string
}

// LoadDefaults populates c with sensible defaults. BaseURL has no default:
// it must come from the environment or a config file.
func (c *Config) LoadDefaults() {
	c.RequestTimeout = 15 * time.Second
	c.SearchDebounce = 500 * time.Millisecond
	c.StateDSN = "coachdesk.db"
}

// Load constructs a Config, applies defaults, then overlays values from the
// environment (.env), a JSON file (if given), and command-line flags. Later
// sources take precedence over earlier ones.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
