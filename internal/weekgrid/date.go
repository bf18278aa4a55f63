package weekgrid

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD) as submitted by
// date inputs and stored on profiles.
func ParseDate(s string) (civil.Date, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return civil.Date{}, &InvalidDateError{Input: s}
	}
	d, err := civil.ParseDate(trimmed)
	if err != nil {
		return civil.Date{}, &InvalidDateError{Input: s, Err: err}
	}
	return d, nil
}

// Today returns the civil date of t in t's own location.
func Today(t time.Time) civil.Date {
	return civil.DateOf(t)
}

func validate(dates ...civil.Date) error {
	for _, d := range dates {
		if !d.IsValid() {
			return &InvalidDateError{Input: d.String()}
		}
	}
	return nil
}

func weekdayOf(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; it has the sign of b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
