// Package config provides runtime configuration for tally.
package config

// Config holds runtime settings. Both fields are explicit inputs to the
// aggregator rather than ambient globals, so the core stays testable in
// isolation.
type Config struct {
	// DefaultRate is the hourly rate applied when neither a CLI
	// override nor an in-file rate directive is present.
	DefaultRate float64 `yaml:"default_rate"`

	// Debug emits one diagnostic line per matched log entry.
	Debug bool `yaml:"debug,omitempty"`
}
