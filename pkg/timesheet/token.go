package timesheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Time-token grammar. A token is either a minutes-only value ("45m") or
// hours with an optional minutes component ("3h30", "3h 30", "3 30",
// "12:45", "3h", "2", "2.5"). The minutes component may carry an "m"
// suffix. minutesOnlyPattern must be tried first: "45m" would otherwise
// read as 45 hours.
var (
	minutesOnlyPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)m$`)
	hoursMinutesPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(?:\s*[h:]\s*|\s+)?(\d+m?)?$`)
)

// ParseToken converts a time token into decimal hours rounded to two
// places. Internal whitespace is collapsed before classification, so
// "3h 30" and "3h30" are equivalent and a stray trailing space cannot
// defeat the minutes-suffix check.
func ParseToken(token string) (float64, error) {
	normalized := strings.Join(strings.Fields(token), " ")
	if normalized == "" {
		return 0, fmt.Errorf("%w: empty token", ErrMalformedTimeToken)
	}

	if m := minutesOnlyPattern.FindStringSubmatch(normalized); m != nil {
		return ParseFields(m[1]+"m", "")
	}

	m := hoursMinutesPattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimeToken, token)
	}
	return ParseFields(m[1], m[2])
}

// ParseFields converts a pre-split time token into decimal hours.
//
// If hoursField ends with the minutes suffix "m", the entire field is a
// minutes value: minutesField is ignored and the result is minutes/60.
// Otherwise the result is hours plus minutes/60, where an empty
// minutesField means zero and a minutes component outside [0,59] is
// rejected. Either way the result is rounded to two decimal places.
func ParseFields(hoursField, minutesField string) (float64, error) {
	if strings.HasSuffix(hoursField, "m") {
		minutes, err := strconv.ParseFloat(strings.TrimSuffix(hoursField, "m"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTimeToken, hoursField)
		}
		if minutes < 0 {
			return 0, fmt.Errorf("%w: negative minutes %q", ErrMalformedTimeToken, hoursField)
		}
		return round2(minutes / 60), nil
	}

	hours, err := strconv.ParseFloat(hoursField, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimeToken, hoursField)
	}
	if hours < 0 {
		return 0, fmt.Errorf("%w: negative hours %q", ErrMalformedTimeToken, hoursField)
	}

	var minutes float64
	if minutesField != "" {
		minutes, err = strconv.ParseFloat(strings.TrimSuffix(minutesField, "m"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTimeToken, minutesField)
		}
		if minutes < 0 || minutes > 59 {
			return 0, fmt.Errorf("%w: minutes %q out of range [0,59]", ErrMalformedTimeToken, minutesField)
		}
	}

	return round2(hours + minutes/60), nil
}

// round2 rounds to two decimal places. Running totals are re-rounded
// through this at every accumulation step, not just for display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
