// Package timeutil parses the timestamp formats accepted from clients.
package timeutil

import (
	"fmt"
	"time"
)

// naiveLayouts are parsed as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse accepts RFC 3339 timestamps with an offset, or a date or date-time
// without one. Values without an offset are taken to be UTC. The result is
// always in UTC.
func Parse(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// ParseOptional returns nil for an empty value.
func ParseOptional(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := Parse(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MonthWindow returns the half-open UTC interval [start, end) covering the
// given calendar month. December rolls over into January of the next year.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
