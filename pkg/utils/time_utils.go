package utils

import (
	"fmt"
	"math"
	"time"
)

// ParseDate accepts the two date shapes clients send: plain "2006-01-02"
// and full RFC3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// TripDurationDays is the whole-day trip length, rounded up, never below 1.
func TripDurationDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
