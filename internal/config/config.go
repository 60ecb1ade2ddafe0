package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Tracker  TrackerConfig   `json:"tracker" yaml:"tracker"`
	Display  DisplayConfig   `json:"display" yaml:"display"`
	History  HistoryConfig   `json:"history" yaml:"history"`
	Log      LogConfig       `json:"log" yaml:"log"`
	Packages []PackageConfig `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// TrackerConfig controls how the driver reacts to bad packages
type TrackerConfig struct {
	OnError string `json:"on_error" yaml:"on_error"` // "abort" or "skip"
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Style string `json:"style" yaml:"style"` // "plain" or "card"
	Chart bool   `json:"chart" yaml:"chart"`
}

// HistoryConfig controls the local report history
type HistoryConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// PackageConfig is one sensor package: a type code and its readings
type PackageConfig struct {
	Type   string    `json:"type" yaml:"type"`
	Fields []float64 `json:"fields" yaml:"fields"`
}

const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"

	StylePlain = "plain"
	StyleCard  = "card"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Tracker: TrackerConfig{OnError: OnErrorAbort},
		Display: DisplayConfig{Style: StylePlain},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads the configuration from path, or from ~/.fittracker/config.json
// when path is empty. Files ending in .yaml or .yml are parsed as YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// LoadOrDefault is Load, falling back to DefaultConfig when no file exists.
// Environment overrides apply in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNoConfig) {
		d := DefaultConfig()
		applyEnvOverrides(&d)
		return &d, nil
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Tracker.OnError == "" {
		c.Tracker.OnError = defaults.Tracker.OnError
	}
	if c.Display.Style == "" {
		c.Display.Style = defaults.Display.Style
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// applyEnvOverrides applies FITTRACKER_* variables on top of the file:
//
//	FITTRACKER_ON_ERROR, FITTRACKER_STYLE, FITTRACKER_CHART,
//	FITTRACKER_HISTORY, FITTRACKER_HISTORY_PATH, FITTRACKER_LOG_LEVEL
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITTRACKER_ON_ERROR"); v != "" {
		cfg.Tracker.OnError = v
	}
	if v := os.Getenv("FITTRACKER_STYLE"); v != "" {
		cfg.Display.Style = v
	}
	if v := os.Getenv("FITTRACKER_CHART"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Display.Chart = b
		}
	}
	if v := os.Getenv("FITTRACKER_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.History.Enabled = b
		}
	}
	if v := os.Getenv("FITTRACKER_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
	if v := os.Getenv("FITTRACKER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Save writes the configuration as indented JSON
func Save(path string, cfg *Config) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists.
// It reports whether a file was written.
func CreateExample(path string) (bool, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return false, err
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return false, nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Packages = []PackageConfig{
		{Type: "SWM", Fields: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Fields: []float64{15000, 1, 75}},
		{Type: "WLK", Fields: []float64{9000, 1, 75, 180}},
	}

	if err := Save(path, &example); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	if c.Tracker.OnError != OnErrorAbort && c.Tracker.OnError != OnErrorSkip {
		return fmt.Errorf("tracker.on_error must be %q or %q, got %q", OnErrorAbort, OnErrorSkip, c.Tracker.OnError)
	}
	if c.Display.Style != StylePlain && c.Display.Style != StyleCard {
		return fmt.Errorf("display.style must be %q or %q, got %q", StylePlain, StyleCard, c.Display.Style)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	for i, p := range c.Packages {
		if strings.TrimSpace(p.Type) == "" {
			return fmt.Errorf("packages[%d].type is required", i)
		}
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", l.Level)
	}
	return level, nil
}

// HistoryPath returns the configured history database path,
// defaulting to ~/.fittracker/history.db
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fittracker"), nil
}
