package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by the color setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents fortuner configuration options
type Config struct {
	// Sources are the files or directories read when no arguments are given
	Sources []string `yaml:"sources"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color controls colored output (auto, always, never)
	Color string `yaml:"color"`

	// Insensitive makes --pattern matching case-insensitive by default
	Insensitive bool `yaml:"insensitive"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Sources:     nil,
		LogLevel:    "warn",
		Color:       ColorAuto,
		Insensitive: false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if len(yamlCfg.Sources) > 0 {
		cfg.Sources = yamlCfg.Sources
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}
	if yamlCfg.Insensitive {
		cfg.Insensitive = true
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(sources []string, logLevel *string, color *string, insensitive *bool) {
	if len(sources) > 0 {
		c.Sources = sources
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if color != nil {
		c.Color = *color
	}
	if insensitive != nil {
		c.Insensitive = *insensitive
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	for i, src := range c.Sources {
		if src == "" {
			return fmt.Errorf("sources[%d] cannot be empty", i)
		}
	}

	return nil
}
