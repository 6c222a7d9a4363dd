package timesheet

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// rateDirectivePattern matches an in-file rate directive such as
// "# Time Sheet - 200". The numeric part may be empty; extraction goes
// through whitespace splitting, not this pattern's match.
var rateDirectivePattern = regexp.MustCompile(`^# Time Sheet - \d*\.?\d*`)

// rateDirectiveField is the 1-based whitespace-split field of a
// directive line that holds the rate ("#", "Time", "Sheet", "-", rate).
const rateDirectiveField = 5

// DefaultHourlyRate applies when neither an explicit rate nor an
// in-file directive is present.
const DefaultHourlyRate = 150

// RateResolver determines the hourly billing rate for a log file.
type RateResolver struct {
	// Default is returned when no explicit rate is given and the file
	// carries no rate directive.
	Default float64
}

// Resolve returns the hourly rate for path. An explicit non-empty rate
// always wins and the file is not consulted. Otherwise the first line
// matching the rate directive supplies the rate; the file is scanned
// once and later directives are ignored. With no directive, the
// resolver's default applies.
func (r *RateResolver) Resolve(path, explicit string) (float64, error) {
	if explicit != "" {
		rate, err := strconv.ParseFloat(explicit, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hourly rate %q: %w", explicit, err)
		}
		return rate, nil
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return 0, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !rateDirectivePattern.MatchString(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < rateDirectiveField {
			return 0, fmt.Errorf("%w: %q in %s", ErrMalformedRateDirective, line, path)
		}
		rate, err := strconv.ParseFloat(fields[rateDirectiveField-1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q in %s", ErrMalformedRateDirective, line, path)
		}
		return rate, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	return r.Default, nil
}
