// Package config provides configuration loading and management for Semshacl.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Semshacl configuration
type Config struct {
	Shapes     ShapesConfig     `yaml:"shapes"`
	Data       DataConfig       `yaml:"data"`
	Validation ValidationConfig `yaml:"validation"`
	Watch      WatchConfig      `yaml:"watch"`
	Log        LogConfig        `yaml:"log"`
}

// ShapesConfig configures where shapes graphs are loaded from
type ShapesConfig struct {
	// Paths is a list of file paths or glob patterns (doublestar syntax)
	Paths []string `yaml:"paths"`
}

// DataConfig configures where data graphs are loaded from
type DataConfig struct {
	// Paths is a list of file paths or glob patterns (doublestar syntax)
	Paths []string `yaml:"paths"`
}

// ValidationConfig configures the validation engine
type ValidationConfig struct {
	// MaxResults caps the number of results per run (0 = unlimited)
	MaxResults int `yaml:"max_results"`

	// SeverityFloor drops results below this severity; one of
	// info, warning, violation, or empty for no filtering
	SeverityFloor string `yaml:"severity_floor"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Enabled turns on file watching with automatic re-validation
	Enabled bool `yaml:"enabled"`
	// DebounceDelay is the quiet period before re-validation after a change
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// LogConfig configures logging output
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Shapes: ShapesConfig{
			Paths: []string{"shapes/**/*.yaml"},
		},
		Data: DataConfig{
			Paths: []string{"data/**/*.yaml"},
		},
		Validation: ValidationConfig{
			MaxResults: 0,
		},
		Watch: WatchConfig{
			Enabled:       false,
			DebounceDelay: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Shapes.Paths) == 0 {
		return fmt.Errorf("shapes.paths is required")
	}
	if c.Validation.MaxResults < 0 {
		return fmt.Errorf("validation.max_results must not be negative")
	}
	switch c.Validation.SeverityFloor {
	case "", "info", "warning", "violation":
	default:
		return fmt.Errorf("validation.severity_floor must be one of info, warning, violation")
	}
	if c.Watch.DebounceDelay < 0 {
		return fmt.Errorf("watch.debounce_delay must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// GetDebounceDelay returns the watch debounce delay, falling back to the
// default when unset.
func (c WatchConfig) GetDebounceDelay() time.Duration {
	if c.DebounceDelay <= 0 {
		return 500 * time.Millisecond
	}
	return c.DebounceDelay
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Shapes.Paths) > 0 {
		c.Shapes.Paths = other.Shapes.Paths
	}
	if len(other.Data.Paths) > 0 {
		c.Data.Paths = other.Data.Paths
	}
	if other.Validation.MaxResults != 0 {
		c.Validation.MaxResults = other.Validation.MaxResults
	}
	if other.Validation.SeverityFloor != "" {
		c.Validation.SeverityFloor = other.Validation.SeverityFloor
	}
	if other.Watch.Enabled {
		c.Watch.Enabled = true
	}
	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
