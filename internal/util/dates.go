package util

import (
	"fmt"
	"time"
)

// DayLayout is the fixed-width, zero-padded calendar date format. Dates in this
// layout order correctly under plain string comparison.
const DayLayout = "2006-01-02"

// DayString formats t as a calendar date in t's own location.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD date as midnight UTC. Arithmetic on the result
// is free of DST shifts.
func ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, day, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", day, err)
	}
	return t, nil
}

// AddDays shifts a calendar date by n days (negative moves backward).
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayLayout), nil
}

// DaysBetween returns the number of calendar days from -> to.
func DaysBetween(from, to string) (int, error) {
	a, err := ParseDay(from)
	if err != nil {
		return 0, err
	}
	b, err := ParseDay(to)
	if err != nil {
		return 0, err
	}
	return int(b.Sub(a).Hours() / 24), nil
}

// WeekStart returns the Monday of the ISO week containing day.
func WeekStart(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(DayLayout), nil
}

// Weekday returns the day of the week for a calendar date.
func Weekday(day string) (time.Weekday, error) {
	t, err := ParseDay(day)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
