package utils

import (
	"fmt"
	"time"
)

// ParseDate parses a YYYY-MM-DD calendar date. The result carries no
// timezone; callers anchor it in the operator's zone.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return d, nil
}

// ParseInstant parses an RFC3339 timestamp into a UTC instant.
func ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, expected RFC3339", value)
	}
	return t.UTC(), nil
}
