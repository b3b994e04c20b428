package utils

import (
	"fmt"
	"telecare-service/internal/pkg/constvars"
	"time"
)

// ParseClock converts an HH:MM wall clock into minutes since midnight.
func ParseClock(clock string) (int, error) {
	if !clockRegexp.MatchString(clock) {
		return 0, fmt.Errorf("invalid clock %q", clock)
	}
	parsed, err := time.Parse(constvars.LayoutClock, clock)
	if err != nil {
		return 0, err
	}
	return MinutesOfDay(parsed), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesOfDay returns the wall clock minutes of t in its own location.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.LayoutDate, date, loc)
}
