package util

import "time"

// QuarterStart returns the first day of the calendar quarter containing t.
// Calendar quarters begin in months 1, 4, 7 and 10.
func QuarterStart(t time.Time) time.Time {
	m := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), m, 1, 0, 0, 0, 0, t.Location())
}

// QuarterEnd returns the last day of the calendar quarter containing t.
func QuarterEnd(t time.Time) time.Time {
	return QuarterStart(t).AddDate(0, 3, -1)
}

// SameQuarter reports whether a and b fall in the same calendar quarter.
func SameQuarter(a, b time.Time) bool {
	return QuarterStart(a).Equal(QuarterStart(b))
}

// AddYears shifts t by the given number of calendar years keeping month and
// day, with standard time.AddDate normalization.
func AddYears(t time.Time, years int) time.Time {
	return t.AddDate(years, 0, 0)
}
