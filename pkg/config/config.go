// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"git.canoozie.net/riddling/propgraph/pkg/model"
)

// Environment selects the logging profile
type Environment string

const (
	Development Environment = "dev"
	Production  Environment = "prod"
)

// Config holds settings shared by the command line tools
type Config struct {
	LogLevel    string      `env:"PROPGRAPH_LOG_LEVEL" envDefault:"info"`
	Environment Environment `env:"PROPGRAPH_ENV" envDefault:"dev"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every field holds a known value
func (c *Config) Validate() error {
	if _, err := model.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("PROPGRAPH_LOG_LEVEL: %w", err)
	}
	switch c.Environment {
	case Development, Production:
		return nil
	default:
		return fmt.Errorf("PROPGRAPH_ENV: unknown environment %q", c.Environment)
	}
}

// Logger builds the logger described by the configuration
func (c *Config) Logger() (*model.DefaultLogger, error) {
	level, err := model.ParseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	if c.Environment == Production {
		return model.NewProductionLogger(level), nil
	}
	return model.NewDefaultLogger(level), nil
}
