package timesheet

import (
	"errors"
	"math"
	"testing"
)

// almostEqual guards against float drift; all parser outputs are
// rounded to two places, so a tight epsilon is safe.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name         string
		hoursField   string
		minutesField string
		want         float64
		wantErr      bool
	}{
		{name: "hours and minutes", hoursField: "3", minutesField: "30", want: 3.50},
		{name: "minutes only", hoursField: "45m", minutesField: "", want: 0.75},
		{name: "bare hours", hoursField: "2", minutesField: "", want: 2.00},
		{name: "zero hours with minutes", hoursField: "0", minutesField: "15", want: 0.25},
		{name: "minutes with m suffix", hoursField: "3", minutesField: "30m", want: 3.50},
		{name: "decimal hours", hoursField: "2.5", minutesField: "", want: 2.50},
		{name: "minutes only ignores second field", hoursField: "45m", minutesField: "30", want: 0.75},
		{name: "minutes only above an hour", hoursField: "90m", minutesField: "", want: 1.50},
		{name: "rounding to two places", hoursField: "1", minutesField: "20", want: 1.33},
		{name: "minutes out of range", hoursField: "3", minutesField: "90", wantErr: true},
		{name: "garbage hours", hoursField: "abc", minutesField: "", wantErr: true},
		{name: "garbage minutes", hoursField: "3", minutesField: "abc", wantErr: true},
		{name: "garbage minutes-only value", hoursField: "xm", minutesField: "", wantErr: true},
		{name: "negative hours", hoursField: "-2", minutesField: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFields(tt.hoursField, tt.minutesField)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFields(%q, %q) error = %v, wantErr %v",
					tt.hoursField, tt.minutesField, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedTimeToken) {
					t.Errorf("ParseFields(%q, %q) error = %v, want ErrMalformedTimeToken",
						tt.hoursField, tt.minutesField, err)
				}
				return
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("ParseFields(%q, %q) = %v, want %v",
					tt.hoursField, tt.minutesField, got, tt.want)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    float64
		wantErr bool
	}{
		{name: "compact hours and minutes", token: "3h30", want: 3.50},
		{name: "spaced hours and minutes", token: "3h 30", want: 3.50},
		{name: "space separator", token: "3 30", want: 3.50},
		{name: "colon separator", token: "12:45", want: 12.75},
		{name: "m-suffixed minutes", token: "3h30m", want: 3.50},
		{name: "minutes only", token: "45m", want: 0.75},
		{name: "minutes only above an hour", token: "90m", want: 1.50},
		{name: "bare integer hours", token: "2", want: 2.00},
		{name: "bare decimal hours", token: "2.5", want: 2.50},
		{name: "hours with trailing h", token: "3h", want: 3.00},
		{name: "surrounding whitespace", token: "  45m  ", want: 0.75},
		{name: "internal whitespace collapsed", token: "3h   30", want: 3.50},
		{name: "rounding to two places", token: "50m", want: 0.83},
		{name: "minutes out of range", token: "3h90", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
		{name: "whitespace only", token: "   ", wantErr: true},
		{name: "garbage", token: "abc", wantErr: true},
		{name: "bad separator", token: "3x30", wantErr: true},
		{name: "dangling minutes suffix", token: "45 m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedTimeToken) {
					t.Errorf("ParseToken(%q) error = %v, want ErrMalformedTimeToken", tt.token, err)
				}
				return
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("ParseToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseToken_AlwaysNonNegative(t *testing.T) {
	tokens := []string{"0", "0m", "0h0", "45m", "3h30", "12:45", "2.5"}

	for _, token := range tokens {
		got, err := ParseToken(token)
		if err != nil {
			t.Errorf("ParseToken(%q) error = %v", token, err)
			continue
		}
		if got < 0 {
			t.Errorf("ParseToken(%q) = %v, want >= 0", token, got)
		}
		if !almostEqual(got, round2(got)) {
			t.Errorf("ParseToken(%q) = %v, not rounded to two places", token, got)
		}
	}
}
