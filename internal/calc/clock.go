// Package calc holds the pure time arithmetic behind the dashboard:
// bedtime recommendations, countdowns, work hours and their formatting.
// Functions take the current time as an argument and have no side effects.
package calc

import (
	"fmt"
	"time"
)

// ParseClock converts an HH:MM string to minutes past midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// mustClock is the fast path for already-validated HH:MM strings. Malformed
// input yields 00:00; validation happens at the settings boundary.
func mustClock(s string) int {
	m, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return m
}

// FormatClock renders minutes past midnight as a zero-padded HH:MM string.
func FormatClock(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	return fmt.Sprintf("%02d:%02d", hours, mins)
}

// FormatDuration renders a minute count in a compact human form:
// "2h 30m", "45m", "3h". The zero component is omitted.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// TimeUntil returns the whole minutes from now until the next occurrence of
// the target clock time, at or after now. A target that has already passed
// today rolls forward exactly one day, so the result is always in [0, 1439]
// and is 0 only at the instant the target equals now.
func TimeUntil(now time.Time, target string) int {
	mins := mustClock(target)

	next := time.Date(now.Year(), now.Month(), now.Day(), mins/60, mins%60, 0, 0, now.Location())
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}

	return int(next.Sub(now).Minutes())
}
