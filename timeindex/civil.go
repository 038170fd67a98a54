package timeindex

import (
	"fmt"
	"time"
)

// CivilDate is a civil calendar date without time of day or location.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilDateOf returns the civil date of t in t's location.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on d.
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// CivilYearMonth is a calendar month.
type CivilYearMonth struct {
	Year  int
	Month time.Month
}

// CivilYearMonthOf returns the calendar month containing t.
func CivilYearMonthOf(t time.Time) CivilYearMonth {
	return CivilYearMonth{Year: t.Year(), Month: t.Month()}
}

// Time returns midnight UTC on the first day of the month.
func (ym CivilYearMonth) Time() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (ym CivilYearMonth) String() string {
	return ym.Time().Format("Jan 2006")
}

// CivilYearQuarter is a calendar quarter.
type CivilYearQuarter struct {
	Year    int
	Quarter int
}

// CivilYearQuarterOf returns the calendar quarter containing t.
func CivilYearQuarterOf(t time.Time) CivilYearQuarter {
	return CivilYearQuarter{Year: t.Year(), Quarter: Quarter(t.Month())}
}

// Time returns midnight UTC on the first day of the quarter.
// Quarters outside 1-4 are normalized with year carry.
func (yq CivilYearQuarter) Time() time.Time {
	return time.Date(yq.Year, time.Month((yq.Quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
}

func (yq CivilYearQuarter) String() string {
	return fmt.Sprintf("%d Q%d", yq.Year, yq.Quarter)
}
