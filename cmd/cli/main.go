// tally - billable hours from plain-text time sheets
//
// tally scans pipe-delimited time-log files, filters entries by a date
// prefix, and reports billable hours, amounts, and day counts per
// project.
package main

import (
	"os"

	"tally/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
