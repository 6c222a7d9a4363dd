package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tally/pkg/config"
	"tally/pkg/output"
	"tally/pkg/project"
	"tally/pkg/timesheet"
)

// ExitCode is set by commands to indicate the result.
var ExitCode = 0

// ErrUsage is returned when the root command is invoked with the wrong
// number of positional arguments.
var ErrUsage = errors.New("usage: tally <path> <date> [hourly_rate]")

// ReportOptions holds command-line options for the billing report.
type ReportOptions struct {
	Output  string
	Config  string
	Verbose bool
}

// RunReport aggregates billable hours for every discovered log file and
// writes the report to stdout.
func RunReport(cmd *cobra.Command, args []string, opts *ReportOptions) error {
	target := args[0]
	datePrefix := args[1]
	explicitRate := ""
	if len(args) == 3 {
		explicitRate = args[2]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	// Diagnostics go to stderr so the stdout contract stays clean.
	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
	ctx = logger.WithContext(ctx)

	files, err := project.Discover(target)
	if err != nil {
		return err
	}

	agg := timesheet.NewAggregator(datePrefix,
		timesheet.WithDefaultRate(cfg.DefaultRate),
		timesheet.WithDebug(cfg.Debug),
	)

	results := make([]*timesheet.Result, 0, len(files))
	for _, file := range files {
		result, err := agg.Aggregate(ctx, file, explicitRate)
		if err != nil {
			// Malformed content is isolated per file; the rest of the
			// run continues. Anything else (unreadable file the user
			// explicitly named) is fatal.
			if errors.Is(err, timesheet.ErrMalformedTimeToken) ||
				errors.Is(err, timesheet.ErrMalformedRateDirective) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				ExitCode = 1
				continue
			}
			return err
		}
		if result == nil {
			// No entries in range: no row for this file.
			continue
		}
		results = append(results, result)
	}

	report := output.NewReport(results, target, datePrefix)

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func createFormatter(opts *ReportOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
