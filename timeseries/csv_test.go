package timeseries

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVDetectsClass(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		class timeindex.Class
		first time.Time
	}{
		{"date", "date,y\n2013-01-01,1\n2013-01-02,2\n", timeindex.Date, day(2013, 1, 1)},
		{"datetime", "ds,y\n2013-01-01 09:30:00,1\n2013-01-01 10:30:00,2\n", timeindex.DateTime, time.Date(2013, 1, 1, 9, 30, 0, 0, time.UTC)},
		{"yearmonth iso", "Month,y\n2013-01,1\n2013-02,2\n", timeindex.YearMonth, day(2013, 1, 1)},
		{"yearmonth fpp", "Month,y\n2013 Jan,1\n2013 Feb,2\n", timeindex.YearMonth, day(2013, 1, 1)},
		{"yearquarter", "Quarter,y\n2013 Q2,1\n2013 Q3,2\n", timeindex.YearQuarter, day(2013, 4, 1)},
		{"year only", "Year,y\n2013,1\n2014,2\n", timeindex.Date, day(2013, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadCSVFromReader(strings.NewReader(tt.data), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.class, s.Class)
			assert.True(t, tt.first.Equal(s.Timestamps[0]), "got %s", s.Timestamps[0])
			assert.Equal(t, []float64{1, 2}, s.Values)
		})
	}
}

func TestLoadCSVForcedClassAndFilter(t *testing.T) {
	data := "unique_id,date,value\nA,2013-01-15,1\nB,2013-02-15,2\nA,2013-03-20,3\n"
	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"
	opts.IDFilter = "A"
	opts.Class = timeindex.YearMonth

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, "value", s.Name)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, day(2013, 3, 1), s.Timestamps[1])
}

func TestLoadCSVMissingValues(t *testing.T) {
	s, err := LoadCSVFromReader(strings.NewReader("date\n2013-01-01\n2013-01-02\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.True(t, math.IsNaN(s.Values[0]))
}

func TestLoadCSVNoHeader(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.Delimiter = ';'

	s, err := LoadCSVFromReader(strings.NewReader("2013-01-01;5\n2013-01-08;NA\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Values[0])
	assert.True(t, math.IsNaN(s.Values[1]))
}

func TestLoadCSVCustomLayout(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.DateFormat = "02.01.2006"
	s, err := LoadCSVFromReader(strings.NewReader("date,y\n31.01.2013,1\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, timeindex.Date, s.Class)
	assert.Equal(t, day(2013, 1, 31), s.Timestamps[0])
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("date,y\nnot a date,1\n"), nil)
	assert.ErrorIs(t, err, timeindex.ErrUnsupportedIndexClass)

	_, err = LoadCSVFromReader(strings.NewReader("date,y\n2013-01-01,1\nbad,2\n"), nil)
	assert.ErrorContains(t, err, "row 2")

	_, err = LoadCSVFromReader(strings.NewReader("date,y\n"), nil)
	assert.Error(t, err)

	opts := DefaultCSVOptions()
	opts.DateColumn = "when"
	_, err = LoadCSVFromReader(strings.NewReader("date,y\n2013-01-01,1\n"), opts)
	assert.ErrorContains(t, err, "when")
}

func TestWriteCSVRoundTripsNotation(t *testing.T) {
	s, err := New(timeindex.YearQuarter, []time.Time{day(2013, 1, 1), day(2013, 4, 1)}, []float64{1.5, math.NaN()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(s, &buf))
	assert.Equal(t, "ds,y\n2013 Q1,1.5\n2013 Q2,NA\n", buf.String())

	back, err := LoadCSVFromReader(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, timeindex.YearQuarter, back.Class)
	assert.Equal(t, s.Timestamps, back.Timestamps)
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	s, err := New(timeindex.Date, []time.Time{day(2013, 1, 1), day(2013, 1, 2)}, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, SaveCSV(s, path))

	_, err = os.Stat(path)
	require.NoError(t, err)

	back, err := LoadCSV(path, nil)
	require.NoError(t, err)
	assert.Equal(t, s.Timestamps, back.Timestamps)
	assert.Equal(t, s.Values, back.Values)
}
