package utils

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted calendar-date format.
const DateLayout = "2006-01-02"

// All schedule arithmetic runs on minutes-since-midnight integers in a single
// implicit zone; providers spanning time zones are not supported.
const minutesPerDay = 24 * 60

// ParseClock converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ValidClockRange reports whether [start,end) is a well-formed window within
// a single day.
func ValidClockRange(start, end int) bool {
	return start >= 0 && end <= minutesPerDay && start < end
}

// ParseDate validates a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// DayOfWeek returns the weekday index (0 = Sunday .. 6 = Saturday) of a
// calendar date string.
func DayOfWeek(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// Today returns the current calendar date string.
func Today() string {
	return time.Now().Format(DateLayout)
}
