// Package dateutil normalizes the date formats accepted by the course
// registration form. The form widgets and legacy CSV imports produce dates
// as YYYY-MM-DD, YYYY/MM/DD, DD/MM/YYYY or DD-MM-YYYY; everything downstream
// works with a single canonical calendar date.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a string cannot be interpreted as a
// calendar date in any of the accepted formats.
var ErrInvalidDate = errors.New("invalid date")

// Storage and display layouts. ISO is what gets persisted; BR is what the
// staff-facing screens and CSV exports show.
const (
	LayoutISO = "2006-01-02"
	LayoutBR  = "02/01/2006"
)

// ParseFlexible parses a date in any accepted textual format.
// Disambiguation rule: if the first delimiter-separated segment has four
// digits the string is year-first, otherwise it is day-first. Impossible
// calendar values (month 13, day 32, Feb 30) are rejected.
func ParseFlexible(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	var sep string
	switch {
	case strings.Contains(s, "-"):
		sep = "-"
	case strings.Contains(s, "/"):
		sep = "/"
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	var layout string
	if len(parts[0]) == 4 {
		layout = "2006" + sep + "01" + sep + "02"
	} else {
		layout = "02" + sep + "01" + sep + "2006"
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatISO renders a date in the canonical storage format (YYYY-MM-DD).
func FormatISO(t time.Time) string {
	return t.Format(LayoutISO)
}

// FormatBR renders a date in the Brazilian display format (DD/MM/YYYY).
func FormatBR(t time.Time) string {
	return t.Format(LayoutBR)
}
