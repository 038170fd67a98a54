package stats

import (
	"strconv"
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// Summary is a read view of an index: its extent, scale and gap statistics.
type Summary struct {
	NObs        int
	Start       time.Time
	End         time.Time
	Units       string
	Scale       Scale
	TZone       string
	DiffMinimum float64
	DiffQ1      float64
	DiffMedian  float64
	DiffMean    float64
	DiffQ3      float64
	DiffMaximum float64

	class timeindex.Class
}

// Field is one named, rendered value of a Summary.
type Field struct {
	Name  string
	Value string
}

// SummaryColumns are the Summary field names in their fixed order.
var SummaryColumns = []string{
	"n.obs", "start", "end", "units", "scale", "tzone",
	"diff.minimum", "diff.q1", "diff.median", "diff.mean", "diff.q3", "diff.maximum",
}

// Summarize describes idx. It never fails: an index with fewer than two
// instants gets NaN gap statistics, and an empty index zero start and end.
func Summarize(idx *timeindex.Index) Summary {
	diff := Diff(idx)
	return Summary{
		NObs:        idx.Len(),
		Start:       idx.First(),
		End:         idx.Last(),
		Units:       idx.Class().Units(),
		Scale:       Classify(diff.Median, idx.Class()),
		TZone:       idx.TZ(),
		DiffMinimum: diff.Minimum,
		DiffQ1:      diff.Q1,
		DiffMedian:  diff.Median,
		DiffMean:    diff.Mean,
		DiffQ3:      diff.Q3,
		DiffMaximum: diff.Maximum,
		class:       idx.Class(),
	}
}

// Diff returns the gap statistics held by the summary.
func (s Summary) Diff() DiffStats {
	return DiffStats{
		Minimum: s.DiffMinimum,
		Q1:      s.DiffQ1,
		Median:  s.DiffMedian,
		Mean:    s.DiffMean,
		Q3:      s.DiffQ3,
		Maximum: s.DiffMaximum,
	}
}

// Regular reports whether every gap of the summarized index is identical.
func (s Summary) Regular() bool {
	return s.Diff().Regular()
}

// Fields returns the twelve summary fields in SummaryColumns order, with
// start and end rendered in the index's native notation.
func (s Summary) Fields() []Field {
	values := []string{
		strconv.Itoa(s.NObs),
		s.formatTime(s.Start),
		s.formatTime(s.End),
		s.Units,
		string(s.Scale),
		s.TZone,
		formatFloat(s.DiffMinimum),
		formatFloat(s.DiffQ1),
		formatFloat(s.DiffMedian),
		formatFloat(s.DiffMean),
		formatFloat(s.DiffQ3),
		formatFloat(s.DiffMaximum),
	}

	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Name: SummaryColumns[i], Value: v}
	}
	return fields
}

func (s Summary) formatTime(t time.Time) string {
	if s.NObs == 0 {
		return "NA"
	}
	return s.class.Format(t)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
