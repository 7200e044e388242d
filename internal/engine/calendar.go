// Package engine holds the pure algorithmic core of the tracker: calendar
// math, due-date recurrence, the bill status state machine, the payday
// scheduler and the savings allocator. Every function is a synchronous
// computation over its inputs, with no clocks, I/O or locking. Callers pass
// "today" explicitly and are responsible for serializing concurrent
// mutations of the same record.
package engine

import "time"

// StartOfDay truncates t to its local calendar day boundary. All date
// comparisons in the engines operate on start-of-day values, never raw
// timestamps.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed calendar-day count from a to b: positive
// when b is in the future relative to a. Both dates are re-anchored in UTC
// before subtracting so a DST transition inside the range (a 23- or
// 25-hour local day) cannot skew the count.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// StartOfNextMonth returns the first day of the month after t's month.
func StartOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// addMonthsClamped adds months calendar-wise, preserving the day-of-month
// where possible and clamping to the last day of the target month on
// overflow (Jan 31 + 1 month = Feb 29 in a leap year, Feb 28 otherwise).
// time.AddDate is deliberately not used here: it normalizes the overflow
// into the following month instead of clamping.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}
