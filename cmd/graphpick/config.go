package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/graphpick/graphpick/closure"
)

// Config tunes the solver. All fields are optional; zero values keep the
// library defaults.
type Config struct {
	// SearchIterations bounds the penalty binary search.
	SearchIterations int `yaml:"search_iterations" validate:"gte=0,lte=1000"`
	// Epsilon is the flow engine's zero-capacity threshold.
	Epsilon float64 `yaml:"epsilon" validate:"gte=0"`
}

var validateConfig = validator.New(validator.WithRequiredStructEnabled())

// loadConfig reads and validates a YAML tuning file. An empty path yields
// the zero Config, which leaves all library defaults in place.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := validateConfig.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// solverOptions converts the config into closure options; unset fields
// contribute nothing.
func (c Config) solverOptions() []closure.Option {
	var opts []closure.Option
	if c.SearchIterations > 0 {
		opts = append(opts, closure.WithSearchIterations(c.SearchIterations))
	}
	if c.Epsilon > 0 {
		opts = append(opts, closure.WithEpsilon(c.Epsilon))
	}

	return opts
}
