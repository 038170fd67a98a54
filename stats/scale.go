package stats

import (
	"fmt"
	"math"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// Scale is the symbolic periodicity of an index.
type Scale string

// Scales from finest to coarsest.
const (
	Second  Scale = "second"
	Minute  Scale = "minute"
	Hour    Scale = "hour"
	Day     Scale = "day"
	Week    Scale = "week"
	Month   Scale = "month"
	Quarter Scale = "quarter"
	Year    Scale = "year"
)

// Canonical durations in seconds. A month is a twelfth of a Julian year.
const (
	secondsPerDay     = 86400
	secondsPerYear    = 365.25 * secondsPerDay
	secondsPerMonth   = secondsPerYear / 12
	secondsPerQuarter = 3 * secondsPerMonth
)

// calendarSlack lets a median slightly below the average length of a
// calendar unit still match it: a 365-day year or a 90-day quarter.
const calendarSlack = 0.97

var scales = []Scale{Second, Minute, Hour, Day, Week, Month, Quarter, Year}

// Scales returns every scale from finest to coarsest.
func Scales() []Scale {
	out := make([]Scale, len(scales))
	copy(out, scales)
	return out
}

// Seconds returns the canonical duration of the scale.
func (s Scale) Seconds() float64 {
	switch s {
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return secondsPerDay
	case Week:
		return 7 * secondsPerDay
	case Month:
		return secondsPerMonth
	case Quarter:
		return secondsPerQuarter
	case Year:
		return secondsPerYear
	default:
		return math.NaN()
	}
}

// SubDaily reports whether the scale is finer than a day.
func (s Scale) SubDaily() bool {
	return s == Second || s == Minute || s == Hour
}

// Calendar reports whether the scale is measured in calendar months.
func (s Scale) Calendar() bool {
	return s == Month || s == Quarter || s == Year
}

// ParseScale parses a scale name.
func ParseScale(name string) (Scale, error) {
	for _, s := range scales {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown scale %q", name)
}

// Classify maps a median gap in seconds to a scale. YearMonth and
// YearQuarter indexes are always month and quarter. Otherwise the result is
// the coarsest scale whose canonical duration does not exceed the median,
// where month, quarter and year durations are lowered by calendarSlack, and
// with a floor of day for Date indexes and second for DateTime indexes.
//
// The slack only moves the lower edge of month, quarter and year. Medians
// from 7889400 to 7945200 seconds (91.3 to 92 days) are quarter with or
// without it, and the year edge stays above them.
func Classify(median float64, class timeindex.Class) Scale {
	switch class {
	case timeindex.YearMonth:
		return Month
	case timeindex.YearQuarter:
		return Quarter
	case timeindex.Date:
		return coarsestBelow(median, Day)
	case timeindex.DateTime:
		return coarsestBelow(median, Second)
	default:
		return coarsestBelow(median, Second)
	}
}

// ClassifyIndex classifies idx from the median of its gaps.
func ClassifyIndex(idx *timeindex.Index) Scale {
	return Classify(Diff(idx).Median, idx.Class())
}

func coarsestBelow(median float64, floor Scale) Scale {
	result := floor
	if math.IsNaN(median) {
		return result
	}
	for _, s := range scales {
		threshold := s.Seconds()
		if s.Calendar() {
			threshold *= calendarSlack
		}
		if threshold <= median && s.Seconds() > result.Seconds() {
			result = s
		}
	}
	return result
}
