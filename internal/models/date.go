package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used everywhere dates are persisted
// or compared. Time of day never participates in date logic.
const DateLayout = "2006-01-02"

// NewID returns a fresh unique identifier for an entity
func NewID() string {
	return uuid.NewString()
}

// Today returns the current local calendar day as YYYY-MM-DD
func Today() string {
	return DateOf(time.Now())
}

// DateOf formats a time as its local calendar day
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a local midnight time
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDateShort turns a YYYY-MM-DD string into a short chart/list label
// like "Jan 15". Malformed dates come back unchanged.
func FormatDateShort(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2")
}
