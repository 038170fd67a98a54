package signature

import (
	"fmt"

	"github.com/sartorproj/gotimeindex/timeindex"
	"github.com/sartorproj/gotimeindex/timeseries"
)

// AugmentFrame returns a copy of f with the signature columns appended after
// its own columns. Every column except index is added; month.lbl and
// wday.lbl become label columns.
func AugmentFrame(f *timeseries.Frame) (*timeseries.Frame, error) {
	idx, err := timeindex.Extract(f)
	if err != nil {
		return nil, err
	}
	rows := Decompose(idx)

	out := f.Copy()
	for _, name := range Columns[1:] {
		col := timeseries.Column{Name: name}
		if isLabel(name) {
			col.Labels = make([]string, len(rows))
			for i, r := range rows {
				col.Labels[i], _ = r.label(name)
			}
		} else {
			col.Numbers = make([]float64, len(rows))
			for i, r := range rows {
				col.Numbers[i] = r.number(name)
			}
		}
		if err := out.Add(col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AugmentSeries returns a numeric matrix holding the series values followed
// by the numeric signature columns.
//
// A matrix stores only numbers, so the month.lbl and wday.lbl label columns
// are dropped. Their information remains available as month and wday.
func AugmentSeries(s *timeseries.Series) (*timeseries.Matrix, error) {
	if len(s.Values) != len(s.Timestamps) {
		return nil, fmt.Errorf("series has %d values for %d timestamps", len(s.Values), len(s.Timestamps))
	}
	idx, err := timeindex.Extract(s)
	if err != nil {
		return nil, err
	}
	rows := Decompose(idx)

	name := s.Name
	if name == "" {
		name = "y"
	}

	m := &timeseries.Matrix{
		Class:   idx.Class(),
		Times:   idx.Times(),
		Columns: append([]string{name}, NumericColumns()...),
		Data:    make([][]float64, len(rows)),
	}
	for i, r := range rows {
		m.Data[i] = append([]float64{s.Values[i]}, r.Numeric()...)
	}
	return m, nil
}
