package timeseries

import (
	"errors"
	"math"
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// Series represents a single-valued time series: timestamps of one index
// class and a value per timestamp.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
	Class      timeindex.Class // zero means DateTime
}

// New creates a series of the given class. A nil values slice yields NaN
// values.
func New(class timeindex.Class, timestamps []time.Time, values []float64) (*Series, error) {
	if values == nil {
		values = make([]float64, len(timestamps))
		for i := range values {
			values[i] = math.NaN()
		}
	}
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Class:      class,
	}, nil
}

// NewWithTimestamps creates a DateTime series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	return New(timeindex.DateTime, timestamps, values)
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// IndexClass returns the class of the timestamps.
func (s *Series) IndexClass() timeindex.Class {
	if s.Class == 0 {
		return timeindex.DateTime
	}
	return s.Class
}

// TimeAxis implements timeindex.Axis.
func (s *Series) TimeAxis() any {
	return axisOf(s.IndexClass(), s.Timestamps)
}

// Index extracts the temporal index of the series.
func (s *Series) Index() (*timeindex.Index, error) {
	return timeindex.Extract(s)
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name, Class: s.Class}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
		Class:      s.Class,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
		Class:      s.Class,
	}
}

// Frame converts the series to a frame with a "date" time column and a
// value column named after the series (or "y").
func (s *Series) Frame() *Frame {
	name := s.Name
	if name == "" {
		name = "y"
	}
	f := NewFrame("date", s.IndexClass(), s.Timestamps)
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	f.Columns = append(f.Columns, Column{Name: name, Numbers: values})
	return f
}

// axisOf converts timestamps into the slice type timeindex.Extract expects
// for class. Unknown classes yield nil, which Extract rejects.
func axisOf(class timeindex.Class, times []time.Time) any {
	switch class {
	case timeindex.Date:
		out := make([]timeindex.CivilDate, len(times))
		for i, t := range times {
			out[i] = timeindex.CivilDateOf(t)
		}
		return out
	case timeindex.YearMonth:
		out := make([]timeindex.CivilYearMonth, len(times))
		for i, t := range times {
			out[i] = timeindex.CivilYearMonthOf(t)
		}
		return out
	case timeindex.YearQuarter:
		out := make([]timeindex.CivilYearQuarter, len(times))
		for i, t := range times {
			out[i] = timeindex.CivilYearQuarterOf(t)
		}
		return out
	case timeindex.DateTime:
		out := make([]time.Time, len(times))
		copy(out, times)
		return out
	default:
		return nil
	}
}
