// Package config loads user configuration for pboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pboard/internal/model"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".pboard.yaml"

	// Default configuration values
	DefaultPrefix     = "PB"
	DefaultBoardTitle = "Project Board"
	DefaultColor      = "auto"
)

// Config represents user configuration from .pboard.yaml.
// This file is user-managed and never written by pboard. Only
// presentation concerns live here; board state is never persisted.
type Config struct {
	// Prefix is the 2-3 letter prefix for record IDs (PB-01, PB-02, ...).
	Prefix string `yaml:"prefix"`

	// BoardTitle is shown in the board header.
	BoardTitle string `yaml:"board_title"`

	// Color controls ANSI color output: auto, always, or never.
	Color string `yaml:"color"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Prefix:     DefaultPrefix,
		BoardTitle: DefaultBoardTitle,
		Color:      DefaultColor,
	}
}

// Load reads .pboard.yaml from dir if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	// Start with defaults and merge the file over them
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// Path returns the config file path for dir.
func Path(dir string) string {
	return filepath.Join(dir, userConfigFile)
}

func (c *Config) validate() error {
	if err := model.ValidatePrefix(c.Prefix); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", c.Color)
	}
	return nil
}
