package utils

import (
	"errors"
	"time"
)

// iso8601Layouts lists the timestamp shapes accepted in snapshots, most common first.
// Layouts without a zone parse as UTC; the wall clock is kept as written.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var errNotISO8601 = errors.New("not an ISO-8601 timestamp")

// ClockLayout is the HH:MM:SS layout used for departures in the report table.
const ClockLayout = "15:04:05"

// ParseISO8601 parses an ISO-8601 timestamp with or without a zone offset.
// No timezone conversion is applied.
func ParseISO8601(s string) (time.Time, error) {
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNotISO8601
}

// FormatClock renders the wall clock of t as HH:MM:SS in t's own location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
