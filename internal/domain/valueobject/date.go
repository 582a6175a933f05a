// Package valueobject contains immutable domain values shared across use cases.
package valueobject

import "time"

// NormalizeDate truncates a timestamp to its calendar date at midnight UTC.
// All ledger date math goes through this so that time-of-day drift can never
// shift a balance period or a deadline by a day.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from 'from' to 'to'.
// Both arguments are normalized to midnight before subtracting, so two calls
// at different hours of the same day return the same value. Zero means the
// dates are the same day; negative means 'to' is in the past.
func DaysBetween(from, to time.Time) int {
	f := NormalizeDate(from)
	t := NormalizeDate(to)
	return int(t.Sub(f).Hours() / 24)
}
