package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MinutesPerDay = 24 * 60
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate checks a YYYY-MM-DD string. The string itself stays the stored
// form so range filters can compare lexicographically.
func ParseDate(value string) (string, error) {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return value, nil
}

// TimeToMinutes converts HH:MM into minutes since midnight.
func TimeToMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}

	return hours*60 + minutes, nil
}

// MinutesToTime formats minutes as HH:MM, wrapping modulo one day.
func MinutesToTime(minutes int) string {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes shifts an HH:MM time, wrapping past midnight.
func AddMinutes(value string, delta int) (string, error) {
	start, err := TimeToMinutes(value)
	if err != nil {
		return "", err
	}
	return MinutesToTime(start + delta), nil
}

// Today returns the current date in loc as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(DateLayout)
}

// FirstOfMonth returns the first day of now's month in loc as YYYY-MM-DD.
func FirstOfMonth(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t := now.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc).Format(DateLayout)
}
