// Package config loads runtime configuration for the CoachDesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally sourced from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-s string   local state database DSN
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.coachdesk.example",
//	  "request_timeout": "15s",
//	  "search_debounce": "500ms",
//	  "state_dsn": "coachdesk.db"
//	}
//
// Primary API
//
//   - type Config                   — holds BaseURL, RequestTimeout, SearchDebounce, StateDSN
//   - func Load() *Config           — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults() — sets sensible defaults
package config
