// Package config handles configuration loading and validation for todo.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

// Config holds the application configuration.
type Config struct {
	Theme         string      `yaml:"theme"`
	InitialFilter string      `yaml:"initial_filter"`
	Input         InputConfig `yaml:"input"`
}

// InputConfig controls how the add-item input turns typed text into actions.
type InputConfig struct {
	Placeholder string `yaml:"placeholder"`
	CharLimit   int    `yaml:"char_limit"` // 0 means unlimited
	Trim        *bool  `yaml:"trim"`       // nil = default (true)
	AllowEmpty  bool   `yaml:"allow_empty"`
}

// TrimEnabled reports whether submitted text is trimmed of surrounding
// whitespace.
func (i InputConfig) TrimEnabled() bool {
	return i.Trim == nil || *i.Trim
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:         styles.DefaultTheme,
		InitialFilter: string(todo.DefaultFilter),
		Input: InputConfig{
			Placeholder: "What needs to be done?",
			CharLimit:   200,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.InitialFilter == "" {
		c.InitialFilter = defaults.InitialFilter
	}
	if c.Input.Placeholder == "" {
		c.Input.Placeholder = defaults.Input.Placeholder
	}
}

// Filter returns the parsed initial visibility filter, falling back to the
// default when the configured value is invalid.
func (c *Config) Filter() todo.VisibilityFilter {
	f, err := todo.ParseFilter(c.InitialFilter)
	if err != nil {
		return todo.DefaultFilter
	}
	return f
}

// InitialState builds the AppState the application starts from.
func (c *Config) InitialState() todo.AppState {
	state := todo.InitialState()
	state.VisibilityFilter = c.Filter()
	return state
}
