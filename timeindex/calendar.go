package timeindex

import "time"

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves t by n calendar months, keeping time of day and location.
// When the day of month does not exist in the target month it is clamped to
// the last day, so Jan 31 + 1 month is Feb 28 (or 29), not Mar 3.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := y*12 + int(m) - 1 + n
	ty, tm := floorDiv(total, 12), time.Month(floorMod(total, 12)+1)
	if last := DaysIn(ty, tm); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(ty, tm, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// MonthsBetween returns the number of calendar months from a to b, ignoring
// day of month.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()*12 + int(b.Month())) - (a.Year()*12 + int(a.Month()))
}

// DaysBetween returns the number of civil days from a to b, read in each
// instant's own location. DST transitions do not affect the count.
func DaysBetween(a, b time.Time) int {
	da := CivilDateOf(a).Time()
	db := CivilDateOf(b).Time()
	return int(db.Sub(da).Hours() / 24)
}

// Seconds returns b-a in seconds, keeping sub-second precision.
func Seconds(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix()) + float64(b.Nanosecond()-a.Nanosecond())/1e9
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
