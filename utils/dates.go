package utils

import (
	"strings"
	"time"
)

// DateLayout is the only accepted calendar-date format on the wire.
const DateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Today returns the current UTC date at midnight, matching the granularity
// of reservation dates.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
