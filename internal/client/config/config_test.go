package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "", c.BaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, c.SearchDebounce)
	assert.Equal(t, "coachdesk.db", c.StateDSN)
}

func TestLoad_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := Load()

	require.NotNil(t, cfg, "Load must not return nil")
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "coachdesk.db", cfg.StateDSN)
}

func Test_parseEnv_Overlay(t *testing.T) {
	t.Setenv("COACHDESK_API_URL", "https://api.env.example")
	t.Setenv("COACHDESK_TIMEOUT", "7s")
	t.Setenv("COACHDESK_SEARCH_DELAY", "250ms")
	t.Setenv("COACHDESK_STATE_DSN", "env.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.env.example", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "env.db", cfg.StateDSN)
}

func Test_parseEnv_InvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv("COACHDESK_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
