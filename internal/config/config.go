// Package config loads and persists qalc configuration from a YAML
// file in the user data directory, and watches it for live reloads.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"qalc/internal/engine"
)

// FileName is the config file name inside the data directory.
const FileName = "config.yaml"

// Config holds all qalc configuration.
type Config struct {
	// Theme selects the color scheme: light, dark or auto.
	Theme string `yaml:"theme"`

	// HistorySize bounds the calculation history log.
	HistorySize int `yaml:"history_size"`

	// DefaultBase is the numeral base active at startup (dec, bin, oct, hex).
	DefaultBase string `yaml:"default_base"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TelemetryConfig controls the opt-in operation usage tracker.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig controls the zap file logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = qalc.log in the data dir
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:       "auto",
		HistorySize: engine.DefaultHistoryLimit,
		DefaultBase: "dec",
		Telemetry:   TelemetryConfig{Enabled: false},
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Validate checks the fields that feed other components.
func (c *Config) Validate() error {
	switch c.Theme {
	case "light", "dark", "auto":
	default:
		return fmt.Errorf("invalid theme %q (want light, dark or auto)", c.Theme)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("history_size must be positive, got %d", c.HistorySize)
	}
	if _, err := engine.ParseBase(c.DefaultBase); err != nil {
		return fmt.Errorf("default_base: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	return nil
}

// Base resolves the configured default base, falling back to decimal.
func (c *Config) Base() engine.Base {
	b, err := engine.ParseBase(c.DefaultBase)
	if err != nil {
		return engine.BaseDecimal
	}
	return b
}

// Load reads configuration from path. A missing file yields defaults;
// a present file is validated after unmarshalling.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}

// DataDir returns the qalc data directory (config, prefs, telemetry,
// logs), creating it if needed.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(base, "qalc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dir, nil
}
