package config

import (
	"encoding/json"
	"os"

	"github.com/coachdesk/coachdesk/internal/flagx"
	"github.com/coachdesk/coachdesk/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can spell intervals either as strings like
// "500ms" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SearchDebounce timex.Duration `json:"search_debounce"`
	StateDSN       string         `json:"state_dsn"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c / -config flag. When no file is named the function is a no-op. Only
// fields present in the file override the config.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.StateDSN != "" {
		cfg.StateDSN = jc.StateDSN
	}
}
