package timesheet

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"tally/pkg/project"
)

// Aggregator sums billable hours across a log file's entries for a
// single date prefix.
type Aggregator struct {
	datePrefix  string
	linePattern *regexp.Regexp
	rates       *RateResolver
	debug       bool
}

// AggregatorOption configures aggregator behavior.
type AggregatorOption func(*Aggregator)

// WithDefaultRate sets the hourly rate used when neither an explicit
// rate nor an in-file directive is present.
func WithDefaultRate(rate float64) AggregatorOption {
	return func(a *Aggregator) {
		a.rates.Default = rate
	}
}

// WithDebug enables one diagnostic event per matched entry.
func WithDebug(debug bool) AggregatorOption {
	return func(a *Aggregator) {
		a.debug = debug
	}
}

// NewAggregator creates an aggregator for the given date prefix.
// A line is an entry when it starts with the prefix and carries at
// least one pipe delimiter after it.
func NewAggregator(datePrefix string, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		datePrefix:  datePrefix,
		linePattern: regexp.MustCompile(`^` + regexp.QuoteMeta(datePrefix) + `.*\|`),
		rates:       &RateResolver{Default: DefaultHourlyRate},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Aggregate scans path for entries matching the date prefix and returns
// their totals. Returns (nil, nil) when no lines match: a file with no
// entries in range produces no result row, not a zero-valued one.
//
// Errors wrapping ErrMalformedTimeToken or ErrMalformedRateDirective are
// data problems local to this file; callers may isolate them and keep
// processing other files.
func (a *Aggregator) Aggregate(ctx context.Context, path, explicitRate string) (*Result, error) {
	rate, err := a.rates.Resolve(path, explicitRate)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	logger := zerolog.Ctx(ctx)

	var totalHours float64
	days := 0
	lineNum := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !a.linePattern.MatchString(line) {
			continue
		}

		// The time token is column 2 of the pipe-split line. The line
		// pattern guarantees at least one pipe.
		token := strings.Split(line, "|")[1]

		hours, err := ParseToken(token)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}

		// Reference behavior: the running total is rounded to two
		// places at every step, not just at the end.
		totalHours = round2(totalHours + hours)
		days++

		if a.debug {
			logger.Debug().
				Str("file", path).
				Int("line", lineNum).
				Str("entry", line).
				Float64("hours", hours).
				Msg("matched entry")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if days == 0 {
		return nil, nil
	}

	name, err := project.Name(path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Project:    name,
		TotalHours: totalHours,
		HourlyRate: rate,
		Amount:     totalHours * rate,
		Days:       days,
		Source:     path,
	}, nil
}
