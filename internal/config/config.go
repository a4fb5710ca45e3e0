// SPDX-License-Identifier: MIT

// Package config loads the command-line front end's settings from the
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MaxPrecision is the number of significant digits that round-trips a float64.
const MaxPrecision = 17

var (
	// ErrFormat indicates an unknown output format.
	ErrFormat = errors.New("config: unknown output format")

	// ErrPrecision indicates a precision outside [1, MaxPrecision].
	ErrPrecision = errors.New("config: precision out of range")
)

// Config holds all settings.
type Config struct {
	Log    LogConfig
	Output OutputConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level       string `envconfig:"BETAINC_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"BETAINC_LOG_DEV" default:"false"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Precision int    `envconfig:"BETAINC_PRECISION" default:"17"`
	Format    string `envconfig:"BETAINC_FORMAT" default:"text"`
}

// Read fills a Config from the environment without validating it, so that
// callers can layer overrides on top before calling Validate.
func Read() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load: %w", err)
	}

	return &cfg, nil
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Output: OutputConfig{
			Precision: MaxPrecision,
			Format:    FormatText,
		},
	}
}

// Validate rejects an unknown format or a precision outside [1, 17].
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrFormat, c.Output.Format)
	}
	if c.Output.Precision < 1 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d", ErrPrecision, c.Output.Precision)
	}

	return nil
}
