// Package timesheet provides time-token parsing, rate resolution, and
// per-file aggregation of billable hours from plain-text time sheets.
package timesheet

import "errors"

// Sentinel errors for malformed log content. Callers use errors.Is to
// distinguish recoverable per-file data problems from I/O failures.
var (
	// ErrMalformedTimeToken indicates a log entry's duration notation
	// could not be parsed.
	ErrMalformedTimeToken = errors.New("malformed time token")

	// ErrMalformedRateDirective indicates a rate directive line was
	// found but no rate could be extracted from it.
	ErrMalformedRateDirective = errors.New("malformed rate directive")
)

// Result is the aggregation output for a single log file.
type Result struct {
	// Project is the project label derived from the file's location.
	Project string `json:"project"`

	// TotalHours is the sum of all matched entries in decimal hours,
	// rounded to two places.
	TotalHours float64 `json:"total_hours"`

	// HourlyRate is the billing rate applied to this file.
	HourlyRate float64 `json:"hourly_rate"`

	// Amount is TotalHours multiplied by HourlyRate, unrounded.
	// Formatters round for display.
	Amount float64 `json:"amount"`

	// Days is the number of matched log lines. One line counts as one
	// billable day; lines sharing a calendar date are not deduplicated.
	Days int `json:"days"`

	// Source is the log file path this result came from.
	Source string `json:"source"`
}
