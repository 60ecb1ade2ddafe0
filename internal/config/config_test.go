package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tracker.OnError != OnErrorAbort {
		t.Errorf("Tracker.OnError = %q, want %q", cfg.Tracker.OnError, OnErrorAbort)
	}
	if cfg.Display.Style != StylePlain {
		t.Errorf("Display.Style = %q, want %q", cfg.Display.Style, StylePlain)
	}
	if cfg.Display.Chart {
		t.Error("Display.Chart should be off by default")
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled should be off by default")
	}
	if len(cfg.Packages) != 0 {
		t.Errorf("Packages should be empty by default, got %d", len(cfg.Packages))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errContains string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:   "skip policy with card style",
			mutate: func(c *Config) { c.Tracker.OnError = OnErrorSkip; c.Display.Style = StyleCard },
		},
		{
			name:        "unknown policy",
			mutate:      func(c *Config) { c.Tracker.OnError = "retry" },
			expectError: true,
			errContains: "tracker.on_error",
		},
		{
			name:        "unknown style",
			mutate:      func(c *Config) { c.Display.Style = "fancy" },
			expectError: true,
			errContains: "display.style",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.Log.Level = "loud" },
			expectError: true,
			errContains: "log.level",
		},
		{
			name: "package without type",
			mutate: func(c *Config) {
				c.Packages = []PackageConfig{{Type: "RUN", Fields: []float64{1, 1, 1}}, {Type: " "}}
			},
			expectError: true,
			errContains: "packages[1].type",
		},
		{
			// Unknown codes are the tracker's job to report, not config's
			name:   "package with unknown type",
			mutate: func(c *Config) { c.Packages = []PackageConfig{{Type: "XYZ"}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"tracker": {"on_error": "skip"},
		"display": {"chart": true},
		"packages": [{"type": "RUN", "fields": [15000, 1, 75]}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, OnErrorSkip, cfg.Tracker.OnError)
	assert.True(t, cfg.Display.Chart)
	assert.Equal(t, StylePlain, cfg.Display.Style, "missing style takes the default")
	assert.Equal(t, "info", cfg.Log.Level)
	require.Len(t, cfg.Packages, 1)
	assert.Equal(t, PackageConfig{Type: "RUN", Fields: []float64{15000, 1, 75}}, cfg.Packages[0])
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
display:
  style: card
history:
  enabled: true
  path: /tmp/h.db
packages:
  - type: SWM
    fields: [720, 1, 80, 25, 40]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StyleCard, cfg.Display.Style)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, OnErrorAbort, cfg.Tracker.OnError)
	require.Len(t, cfg.Packages, 1)
	assert.Equal(t, []float64{720, 1, 80, 25, 40}, cfg.Packages[0].Fields)

	p, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/h.db", p)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrNoConfig)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, OnErrorAbort, cfg.Tracker.OnError)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FITTRACKER_ON_ERROR", "skip")
	t.Setenv("FITTRACKER_STYLE", "card")
	t.Setenv("FITTRACKER_CHART", "true")
	t.Setenv("FITTRACKER_HISTORY", "1")
	t.Setenv("FITTRACKER_HISTORY_PATH", "/var/tmp/fit.db")
	t.Setenv("FITTRACKER_LOG_LEVEL", "debug")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, OnErrorSkip, cfg.Tracker.OnError)
	assert.Equal(t, StyleCard, cfg.Display.Style)
	assert.True(t, cfg.Display.Chart)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/var/tmp/fit.db", cfg.History.Path)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestCreateExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	written, err := CreateExample(path)
	require.NoError(t, err)
	assert.True(t, written)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Packages, 3)
	assert.Equal(t, "SWM", cfg.Packages[0].Type)

	// Second call must not overwrite
	written, err = CreateExample(path)
	require.NoError(t, err)
	assert.False(t, written)
}
