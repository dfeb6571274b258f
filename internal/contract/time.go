package contract

import "time"

// YearWindow returns the inclusive UTC bounds of one calendar year,
// [Jan 1 00:00:00Z .. Dec 31 23:59:59Z].
func YearWindow(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return start, end
}

// MonthsAgo returns t minus n calendar months. The subtraction is
// calendar-based, not a fixed number of days, so the cutoff lands on the
// same day-of-month n months earlier (normalized by the usual date rules).
func MonthsAgo(t time.Time, n int) time.Time {
	return t.AddDate(0, -n, 0)
}

// DayOf truncates t to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
