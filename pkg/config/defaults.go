package config

import "tally/pkg/timesheet"

// Default values for configuration.
const (
	// DefaultHourlyRate applies when no rate is specified anywhere.
	DefaultHourlyRate = timesheet.DefaultHourlyRate
)

// Environment variable names.
const (
	// EnvDebug enables per-entry diagnostics when set to any non-empty
	// value.
	EnvDebug = "DEBUG"

	// EnvDefaultRate overrides the default hourly rate.
	EnvDefaultRate = "TALLY_DEFAULT_RATE"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultRate: DefaultHourlyRate,
	}
}
