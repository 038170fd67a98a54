package future

import (
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/gotimeindex/internal/logger"
	"github.com/sartorproj/gotimeindex/stats"
	"github.com/sartorproj/gotimeindex/timeindex"
)

// Method names how a Plan projects instants.
type Method string

// Projection methods.
const (
	// MethodRegular repeats the single gap of a regular index.
	MethodRegular Method = "regular"
	// MethodCalendar steps by the modal number of calendar months.
	MethodCalendar Method = "calendar"
	// MethodSlots steps by the modal number of days onto observed weekdays.
	MethodSlots Method = "weekday-slots"
	// MethodModal repeats the modal gap when no weekday pattern is recognized.
	MethodModal Method = "modal"
)

// Unit is the unit a Plan's step is measured in.
type Unit string

// Step units.
const (
	UnitSecond Unit = "second"
	UnitDay    Unit = "day"
	UnitMonth  Unit = "month"
)

// Plan is the inferred cadence of a historical index.
type Plan struct {
	Class  timeindex.Class
	Scale  stats.Scale
	Method Method
	Unit   Unit

	// Step is the step in days or months. Every is the step for UnitSecond.
	Step  int
	Every time.Duration

	// Weekdays lists the observed weekday slots for MethodSlots.
	Weekdays []time.Weekday

	// MonthEnd is set when every historical instant falls on the last day
	// of its month; calendar steps then land on month ends too.
	MonthEnd bool

	last  time.Time
	slots weekdaySlots
}

// NewPlan infers the cadence of idx. It needs at least two instants and one
// positive gap.
func NewPlan(idx *timeindex.Index) (*Plan, error) {
	if idx == nil || idx.Len() < 2 {
		n := 0
		if idx != nil {
			n = idx.Len()
		}
		return nil, fmt.Errorf("%w: have %d instants, need at least 2", timeindex.ErrEmptyIndex, n)
	}

	times := idx.Times()
	gaps := stats.Gaps(idx)
	desc := stats.Describe(gaps)
	p := &Plan{
		Class: idx.Class(),
		Scale: stats.Classify(desc.Median, idx.Class()),
		last:  times[len(times)-1],
	}
	if desc.Maximum <= 0 {
		return nil, fmt.Errorf("%w: all %d instants are identical", timeindex.ErrEmptyIndex, len(times))
	}

	var err error
	switch p.Class {
	case timeindex.YearMonth:
		err = p.calendar(times, 1)
	case timeindex.YearQuarter:
		err = p.calendar(times, 3)
	case timeindex.Date, timeindex.DateTime:
		err = p.instants(times, gaps, desc)
	default:
		err = fmt.Errorf("%w: %s", timeindex.ErrUnsupportedIndexClass, p.Class)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// calendar plans a modal step of whole calendar units of monthsPerUnit
// months. Step is stored in months.
func (p *Plan) calendar(times []time.Time, monthsPerUnit int) error {
	var steps []int
	for i := 1; i < len(times); i++ {
		if m := timeindex.MonthsBetween(times[i-1], times[i]); m > 0 {
			steps = append(steps, m/monthsPerUnit)
		}
	}
	step := stats.ModeInt(steps)
	if step <= 0 {
		return fmt.Errorf("%w: no positive calendar step", timeindex.ErrEmptyIndex)
	}

	p.Method = MethodCalendar
	p.Unit = UnitMonth
	p.Step = step * monthsPerUnit
	p.MonthEnd = allMonthEnds(times)
	return nil
}

// instants plans Date and DateTime indexes.
func (p *Plan) instants(times []time.Time, gaps []float64, desc stats.DiffStats) error {
	slots := observedSlots(times)

	if desc.Regular() {
		if desc.Minimum == 86400 && slots.businessWeek() {
			p.useSlots(1, slots)
			return nil
		}
		p.Method = MethodRegular
		p.Unit = UnitSecond
		p.Every = seconds(desc.Minimum)
		return nil
	}

	switch {
	case p.Scale.SubDaily():
		var positive []float64
		for _, g := range gaps {
			if g > 0 {
				positive = append(positive, g)
			}
		}
		p.Method = MethodModal
		p.Unit = UnitSecond
		p.Every = seconds(stats.Mode(positive))
		return nil

	case p.Scale.Calendar():
		return p.calendar(times, 1)

	default:
		var steps []int
		for i := 1; i < len(times); i++ {
			if d := timeindex.DaysBetween(times[i-1], times[i]); d > 0 {
				steps = append(steps, d)
			}
		}
		step := stats.ModeInt(steps)
		if step <= 0 {
			return fmt.Errorf("%w: no positive day step", timeindex.ErrEmptyIndex)
		}

		if slots.explains(times, step) {
			p.useSlots(step, slots)
			return nil
		}
		logger.Debug("no weekday pattern recognized, projecting modal step",
			"class", p.Class.String(), "scale", string(p.Scale), "step_days", step)
		p.Method = MethodModal
		p.Unit = UnitDay
		p.Step = step
		return nil
	}
}

func (p *Plan) useSlots(step int, slots weekdaySlots) {
	p.Method = MethodSlots
	p.Unit = UnitDay
	p.Step = step
	p.slots = slots
	p.Weekdays = slots.present()
}

// Project returns the next n instants after the last historical instant.
func (p *Plan) Project(n int, opts ...Option) []time.Time {
	o := newOptions(p.Class, opts)

	out := make([]time.Time, 0, n)
	prev := p.last
	for k := 1; len(out) < n; k++ {
		var next time.Time
		switch p.Method {
		case MethodRegular:
			next = prev.Add(p.Every)
		case MethodCalendar:
			next = timeindex.AddMonths(p.last, k*p.Step)
			if p.MonthEnd {
				next = next.AddDate(0, 0, timeindex.DaysIn(next.Year(), next.Month())-next.Day())
			}
		case MethodSlots:
			next = p.slots.next(prev, p.Step)
		case MethodModal:
			if p.Unit == UnitSecond {
				next = prev.Add(p.Every)
			} else {
				next = p.last.AddDate(0, 0, k*p.Step)
			}
		}
		prev = next

		if o.skipped(next) {
			continue
		}
		out = append(out, next)
	}
	return out
}

func allMonthEnds(times []time.Time) bool {
	for _, t := range times {
		if t.Day() != timeindex.DaysIn(t.Year(), t.Month()) {
			return false
		}
	}
	return true
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
