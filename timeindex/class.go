package timeindex

import (
	"fmt"
	"strings"
	"time"
)

// Class identifies the kind of temporal values held by an Index.
type Class int

// Recognized index classes. The zero value is not a valid class.
const (
	Date Class = iota + 1
	DateTime
	YearMonth
	YearQuarter
)

// Units for Summary reporting.
const (
	UnitsDays    = "days"
	UnitsSeconds = "seconds"
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Date:
		return "date"
	case DateTime:
		return "datetime"
	case YearMonth:
		return "yearmonth"
	case YearQuarter:
		return "yearquarter"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Valid reports whether c is one of the four recognized classes.
func (c Class) Valid() bool {
	return c >= Date && c <= YearQuarter
}

// ParseClass parses a class name as produced by String. Case is ignored.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return Date, nil
	case "datetime", "posixct", "timestamp":
		return DateTime, nil
	case "yearmonth", "yearmon", "month":
		return YearMonth, nil
	case "yearquarter", "yearqtr", "quarter":
		return YearQuarter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedIndexClass, s)
}

// Units returns "seconds" for DateTime and "days" for the calendar classes.
func (c Class) Units() string {
	switch c {
	case DateTime:
		return UnitsSeconds
	case Date, YearMonth, YearQuarter:
		return UnitsDays
	default:
		return ""
	}
}

// Canonical maps t onto the representative instant of its class.
// Date, YearMonth and YearQuarter instants are midnight UTC on the civil day,
// the first of the month, or the first of the quarter, read in t's location.
// DateTime instants are returned unchanged.
func (c Class) Canonical(t time.Time) time.Time {
	switch c {
	case Date:
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case YearMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case YearQuarter:
		return time.Date(t.Year(), quarterStart(t.Month()), 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// Format renders t in the native notation of the class.
func (c Class) Format(t time.Time) string {
	switch c {
	case Date:
		return t.Format("2006-01-02")
	case DateTime:
		return t.Format(time.RFC3339)
	case YearMonth:
		return t.Format("Jan 2006")
	case YearQuarter:
		return fmt.Sprintf("%d Q%d", t.Year(), Quarter(t.Month()))
	default:
		return t.String()
	}
}

// Quarter returns the quarter (1-4) a month falls in.
func Quarter(m time.Month) int {
	return (int(m)-1)/3 + 1
}

func quarterStart(m time.Month) time.Month {
	return time.Month((Quarter(m)-1)*3 + 1)
}
