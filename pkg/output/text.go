package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter renders one space-separated line per processed file:
//
//	$<amount> <hours> $<rate> <days> <project>
//
// Amounts, hours, and rates carry two decimal places.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	for _, r := range report.Results {
		fmt.Fprintf(w, "$%.2f %.2f $%.2f %d %s\n",
			r.Amount, r.TotalHours, r.HourlyRate, r.Days, r.Project)
	}

	if f.opts.Verbose && len(report.Results) > 0 {
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Total: $%.2f across %d file(s), %.2f hours, %d day(s)\n",
			report.Summary.TotalAmount,
			report.Summary.Files,
			report.Summary.TotalHours,
			report.Summary.TotalDays)
	}

	return nil
}
