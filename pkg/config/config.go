package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load builds the runtime configuration. An empty path means no config
// file: defaults plus environment overrides. Precedence, lowest first:
// built-in defaults, config file, environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.DefaultRate <= 0 {
		return errors.New("default_rate: must be greater than zero")
	}
	return nil
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() error {
	if os.Getenv(EnvDebug) != "" {
		c.Debug = true
	}

	if raw := os.Getenv(EnvDefaultRate); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDefaultRate, raw, err)
		}
		c.DefaultRate = rate
	}

	return nil
}
