// Package cli provides the command-line interface for tally.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, commands.ErrUsage) {
			// The usage contract prints to stdout and exits 1.
			fmt.Fprint(os.Stdout, rootCmd.UsageString())
			return 1
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command. The root command runs
// the billing report directly; there is no separate report subcommand.
func NewRootCommand() *cobra.Command {
	opts := &commands.ReportOptions{}

	rootCmd := &cobra.Command{
		Use:   "tally <path> <date> [hourly_rate]",
		Short: "Compute billable hours from time-log files",
		Long: `tally computes billable hours, amounts, and day counts from
plain-text time-log files, filtered by a date prefix.

Arguments:
  path         a log file, or a directory of per-project subdirectories
               each containing a log.md
  date         date prefix to filter by (YYYY, YYYY/MM, or YYYY/MM/DD)
  hourly_rate  optional rate override; wins over in-file directives

Log files are pipe-delimited records:
  2019/03/05|3h30|worked on the parser

An optional first line sets the file's default hourly rate:
  # Time Sheet - 200

Output, one line per file with matching entries:
  $<amount> <hours> $<rate> <days> <project>

Exit codes:
  0 - Normal completion (including zero matching entries)
  1 - Missing arguments, or malformed data in some file
  2 - Runtime error`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return commands.ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunReport(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	rootCmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Append run totals after the per-file lines")

	// Subcommands
	rootCmd.AddCommand(commands.NewProjectsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
