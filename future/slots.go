package future

import (
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// weekdaySlots marks the weekdays observed in a history.
type weekdaySlots [7]bool

func observedSlots(times []time.Time) weekdaySlots {
	var s weekdaySlots
	for _, t := range times {
		s[t.Weekday()] = true
	}
	return s
}

func (s weekdaySlots) present() []time.Weekday {
	var out []time.Weekday
	for d, ok := range s {
		if ok {
			out = append(out, time.Weekday(d))
		}
	}
	return out
}

func (s weekdaySlots) absent() []time.Weekday {
	var out []time.Weekday
	for d, ok := range s {
		if !ok {
			out = append(out, time.Weekday(d))
		}
	}
	return out
}

// businessWeek reports whether exactly Saturday and Sunday are absent.
func (s weekdaySlots) businessWeek() bool {
	absent := s.absent()
	return len(absent) == 2 && absent[0] == time.Sunday && absent[1] == time.Saturday
}

// next steps step days from prev, then moves day by day until it lands on
// an observed weekday. prev's weekday is always observed, so the loop ends
// within a week.
func (s weekdaySlots) next(prev time.Time, step int) time.Time {
	t := prev.AddDate(0, 0, step)
	for i := 0; i < 7 && !s[t.Weekday()]; i++ {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// explains reports whether some weekday is absent and skipping it reproduces
// at least one historical gap longer than step.
func (s weekdaySlots) explains(times []time.Time, step int) bool {
	if len(s.absent()) == 0 {
		return false
	}
	for i := 1; i < len(times); i++ {
		if timeindex.DaysBetween(times[i-1], times[i]) <= step {
			continue
		}
		if timeindex.DaysBetween(s.next(times[i-1], step), times[i]) == 0 {
			return true
		}
	}
	return false
}
