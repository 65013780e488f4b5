package kernel

import "time"

// MonthsBefore moves t back by n calendar months keeping the wall clock.
// When the source day does not exist in the target month the result is
// clamped to that month's last day, so 31 March minus one month is the end
// of February rather than early March as time.AddDate would produce.
func MonthsBefore(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month-time.Month(n), 1, 0, 0, 0, 0, t.Location())

	if last := daysIn(target.Year(), target.Month(), t.Location()); day > last {
		day = last
	}

	hour, minute, sec := t.Clock()
	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
