// Package output provides formatting for aggregated billing results.
package output

import (
	"time"

	"tally/pkg/timesheet"
)

// Report is the complete billing output for one invocation.
type Report struct {
	// Results holds one entry per processed file with at least one
	// matching log line, in discovery order.
	Results []*timesheet.Result `json:"results"`

	// Summary provides totals across all results.
	Summary Summary `json:"summary"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides totals across all results.
type Summary struct {
	// Files is the number of files that produced a result row.
	Files int `json:"files"`

	// TotalHours is the sum of hours across all results.
	TotalHours float64 `json:"total_hours"`

	// TotalAmount is the sum of amounts across all results.
	TotalAmount float64 `json:"total_amount"`

	// TotalDays is the sum of day counts across all results.
	TotalDays int `json:"total_days"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Target is the path argument the run was invoked with.
	Target string `json:"target"`

	// DatePrefix is the date filter that was applied.
	DatePrefix string `json:"date_prefix"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport creates a Report from per-file results.
func NewReport(results []*timesheet.Result, target, datePrefix string) *Report {
	report := &Report{
		Results: results,
		Metadata: Metadata{
			Target:      target,
			DatePrefix:  datePrefix,
			GeneratedAt: time.Now(),
		},
		Summary: Summary{
			Files: len(results),
		},
	}

	for _, r := range results {
		report.Summary.TotalHours += r.TotalHours
		report.Summary.TotalAmount += r.Amount
		report.Summary.TotalDays += r.Days
	}

	return report
}
