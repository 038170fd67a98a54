package timeseries

import (
	"fmt"
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// Column is a named frame column holding either numbers or labels.
type Column struct {
	Name    string
	Numbers []float64
	Labels  []string
}

// IsLabel reports whether the column holds labels.
func (c Column) IsLabel() bool {
	return c.Labels != nil
}

// Len returns the number of cells in the column.
func (c Column) Len() int {
	if c.IsLabel() {
		return len(c.Labels)
	}
	return len(c.Numbers)
}

// Frame is a heterogeneous table anchored on a time column.
type Frame struct {
	TimeColumn string
	Class      timeindex.Class
	Times      []time.Time
	Columns    []Column
}

// NewFrame creates a frame with only its time column.
func NewFrame(timeColumn string, class timeindex.Class, times []time.Time) *Frame {
	return &Frame{
		TimeColumn: timeColumn,
		Class:      class,
		Times:      times,
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Times)
}

// TimeAxis implements timeindex.Axis.
func (f *Frame) TimeAxis() any {
	return axisOf(f.Class, f.Times)
}

// Names returns the time column name followed by every other column name.
func (f *Frame) Names() []string {
	names := []string{f.TimeColumn}
	for _, c := range f.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Column looks up a column by name.
func (f *Frame) Column(name string) (Column, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Add appends a column. Its length must match the frame and its name must be
// new.
func (f *Frame) Add(c Column) error {
	if c.Len() != f.Len() {
		return fmt.Errorf("column %q has %d rows, frame has %d", c.Name, c.Len(), f.Len())
	}
	if _, exists := f.Column(c.Name); exists || c.Name == f.TimeColumn {
		return fmt.Errorf("column %q already exists", c.Name)
	}
	f.Columns = append(f.Columns, c)
	return nil
}

// Copy creates a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	times := make([]time.Time, len(f.Times))
	copy(times, f.Times)

	out := NewFrame(f.TimeColumn, f.Class, times)
	for _, c := range f.Columns {
		cc := Column{Name: c.Name}
		if c.IsLabel() {
			cc.Labels = append([]string{}, c.Labels...)
		} else {
			cc.Numbers = append([]float64{}, c.Numbers...)
		}
		out.Columns = append(out.Columns, cc)
	}
	return out
}

// Matrix is a homogeneous numeric table anchored on a time axis, in the
// shape of an xts object: row i holds the values observed at Times[i].
type Matrix struct {
	Class   timeindex.Class
	Times   []time.Time
	Columns []string
	Data    [][]float64
}

// TimeAxis implements timeindex.Axis.
func (m *Matrix) TimeAxis() any {
	return axisOf(m.Class, m.Times)
}

// Len returns the number of rows.
func (m *Matrix) Len() int {
	return len(m.Times)
}

// Col returns a copy of the named column, or nil if absent.
func (m *Matrix) Col(name string) []float64 {
	j := -1
	for i, c := range m.Columns {
		if c == name {
			j = i
			break
		}
	}
	if j < 0 {
		return nil
	}

	out := make([]float64, len(m.Data))
	for i, row := range m.Data {
		out[i] = row[j]
	}
	return out
}
