package timeindex

import (
	"fmt"
	"time"
)

// Axis is implemented by containers that carry a temporal column or axis.
// TimeAxis returns one of the slice types accepted by Extract.
type Axis interface {
	TimeAxis() any
}

// Extract returns the temporal index of src. Recognized inputs are *Index,
// []time.Time (DateTime), []CivilDate, []CivilYearMonth, []CivilYearQuarter,
// and any Axis whose TimeAxis returns one of those.
func Extract(src any) (*Index, error) {
	switch v := src.(type) {
	case *Index:
		if v == nil {
			return nil, fmt.Errorf("%w: nil index", ErrUnsupportedIndexClass)
		}
		return v, nil
	case []time.Time:
		return New(DateTime, v)
	case []CivilDate:
		times := make([]time.Time, len(v))
		for i, d := range v {
			times[i] = d.Time()
		}
		return New(Date, times)
	case []CivilYearMonth:
		times := make([]time.Time, len(v))
		for i, ym := range v {
			times[i] = ym.Time()
		}
		return New(YearMonth, times)
	case []CivilYearQuarter:
		times := make([]time.Time, len(v))
		for i, yq := range v {
			times[i] = yq.Time()
		}
		return New(YearQuarter, times)
	case Axis:
		return Extract(v.TimeAxis())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedIndexClass, src)
	}
}
