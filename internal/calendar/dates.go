package calendar

import "time"

// DaysInMonth returns the number of days in the given month.
// Day zero of the following month normalizes to the last day of this one,
// which covers leap years without a lookup table.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index (Sunday = 0) of the first day of
// the given month.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// SameDay reports whether a and b fall on the same calendar date.
// Time-of-day is ignored.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether t falls on the current calendar date.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}
