package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseFlexibleFormats(t *testing.T) {
	want := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	cases := []string{
		"2025-03-07",
		"2025/03/07",
		"07/03/2025",
		"07-03-2025",
		" 2025-03-07 ",
	}
	for _, in := range cases {
		got, err := ParseFlexible(in)
		if err != nil {
			t.Fatalf("ParseFlexible(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseFlexible(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseFlexibleRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"hoje",
		"2025-13-01",
		"32/01/2025",
		"30/02/2025",
		"2025-01",
		"01.02.2025",
	}
	for _, in := range cases {
		if _, err := ParseFlexible(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseFlexible(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	// Parsing the formatted output must yield the same calendar date.
	for _, in := range []string{"15/04/2025", "2024-12-31", "01-01-2026"} {
		first, err := ParseFlexible(in)
		if err != nil {
			t.Fatalf("ParseFlexible(%q): %v", in, err)
		}
		second, err := ParseFlexible(FormatISO(first))
		if err != nil {
			t.Fatalf("reparse of %q: %v", FormatISO(first), err)
		}
		if !first.Equal(second) {
			t.Errorf("round trip of %q changed the date: %s != %s", in, first, second)
		}
	}
}

func TestFormatBR(t *testing.T) {
	d := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatBR(d); got != "05/01/2025" {
		t.Errorf("FormatBR = %q, want 05/01/2025", got)
	}
	if got := FormatISO(d); got != "2025-01-05" {
		t.Errorf("FormatISO = %q, want 2025-01-05", got)
	}
}
