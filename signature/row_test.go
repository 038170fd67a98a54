package signature

import (
	"math"
	"testing"
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateRange(from time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = from.AddDate(0, 0, i)
	}
	return out
}

func TestDecomposeOrderPreserving(t *testing.T) {
	times := dateRange(time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC), 40)
	idx := timeindex.MustNew(timeindex.Date, times...)

	rows := Decompose(idx)
	require.Len(t, rows, idx.Len())
	for i, r := range rows {
		assert.True(t, r.Index.Equal(idx.At(i)))
	}
}

func TestDecomposeDateTimeFields(t *testing.T) {
	ts := time.Date(2013, 3, 15, 14, 30, 45, 0, time.UTC)
	rows, err := DecomposeTimes(timeindex.DateTime, []time.Time{ts})
	require.NoError(t, err)
	r := rows[0]

	assert.Equal(t, float64(ts.Unix()), r.IndexNum)
	assert.True(t, math.IsNaN(r.Diff))
	assert.Equal(t, 2013, r.Year)
	assert.Equal(t, 2013, r.YearISO)
	assert.Equal(t, 1, r.Half)
	assert.Equal(t, 1, r.Quarter)
	assert.Equal(t, 3, r.Month)
	assert.Equal(t, 2, r.MonthXts)
	assert.Equal(t, "Mar", r.MonthLbl)
	assert.Equal(t, 15, r.Day)
	assert.Equal(t, 14, r.Hour)
	assert.Equal(t, 30, r.Minute)
	assert.Equal(t, 45, r.Second)
	assert.Equal(t, 2, r.Hour12)
	assert.Equal(t, 2, r.AmPm)
	assert.Equal(t, 6, r.Wday)
	assert.Equal(t, 5, r.WdayXts)
	assert.Equal(t, "Fri", r.WdayLbl)
	assert.Equal(t, 15, r.Mday)
	assert.Equal(t, 74, r.Qday)
	assert.Equal(t, 74, r.Yday)
	assert.Equal(t, 2, r.Mweek)
	assert.Equal(t, 10, r.Week)
	assert.Equal(t, 11, r.WeekISO)
	assert.Equal(t, 0, r.Week2)
	assert.Equal(t, 1, r.Week3)
	assert.Equal(t, 2, r.Week4)
	assert.Equal(t, 3, r.Mday7)
}

func TestDecomposeEpochIsZero(t *testing.T) {
	rows, err := DecomposeTimes(timeindex.DateTime, []time.Time{time.Unix(0, 0).UTC()})
	require.NoError(t, err)
	assert.Equal(t, 0.0, rows[0].IndexNum)

	rows, err = DecomposeTimes(timeindex.Date, []time.Time{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, rows[0].IndexNum)
	assert.Equal(t, 5, rows[0].Wday) // Thursday
}

func TestDecomposeIndexNumMonotonic(t *testing.T) {
	times := []time.Time{
		time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	rows, err := DecomposeTimes(timeindex.DateTime, times)
	require.NoError(t, err)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i].IndexNum, rows[i-1].IndexNum)
		assert.Equal(t, rows[i].IndexNum-rows[i-1].IndexNum, rows[i].Diff)
	}
	assert.Equal(t, -3600.0, rows[0].IndexNum)
}

func TestDecomposeDateRoundTrip(t *testing.T) {
	times := dateRange(time.Date(2011, 12, 20, 0, 0, 0, 0, time.UTC), 800)
	rows := Decompose(timeindex.MustNew(timeindex.Date, times...))
	for i, r := range rows {
		got := time.Date(r.Year, time.Month(r.Month), r.Mday, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, times[i], got)
		assert.Equal(t, r.Mday, r.Day)
	}
}

func TestMday7CountsWeekdayOccurrences(t *testing.T) {
	// March 2013 has five Fridays, Saturdays and Sundays.
	times := dateRange(time.Date(2013, 3, 1, 0, 0, 0, 0, time.UTC), 31)
	rows := Decompose(timeindex.MustNew(timeindex.Date, times...))

	seen := map[int]int{}
	for _, r := range rows {
		seen[r.Wday]++
		assert.Equal(t, seen[r.Wday], r.Mday7, "mday %d", r.Mday)
		assert.Equal(t, r.Mday7-1, r.Mweek)
	}
	assert.Equal(t, 5, rows[30].Mday7)
}

func TestWeekSundayStart(t *testing.T) {
	// 2013-01-05 is a Saturday, 2013-01-06 the year's first Sunday.
	rows, err := DecomposeTimes(timeindex.Date, []time.Time{
		time.Date(2013, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2013, 1, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2013, 1, 13, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rows[0].Week)
	assert.Equal(t, 1, rows[1].Week)
	assert.Equal(t, 2, rows[2].Week)
	assert.Equal(t, 0, rows[2].Week2)
	assert.Equal(t, 2, rows[2].Week3)
	// ISO weeks start on Monday.
	assert.Equal(t, 1, rows[0].WeekISO)
	assert.Equal(t, 1, rows[1].WeekISO)
}

func TestISOYearAtYearBoundary(t *testing.T) {
	rows, err := DecomposeTimes(timeindex.Date, []time.Time{time.Date(2012, 12, 31, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 2012, rows[0].Year)
	assert.Equal(t, 2013, rows[0].YearISO)
	assert.Equal(t, 1, rows[0].WeekISO)
	assert.Equal(t, 2, rows[0].Half)
	assert.Equal(t, 92, rows[0].Qday)
}

func TestHour12AndAmPm(t *testing.T) {
	tests := []struct {
		hour   int
		hour12 int
		amPm   int
	}{
		{0, 12, 1},
		{1, 1, 1},
		{11, 11, 1},
		{12, 12, 2},
		{13, 1, 2},
		{23, 11, 2},
	}

	for _, tt := range tests {
		ts := time.Date(2013, 1, 1, tt.hour, 0, 0, 0, time.UTC)
		rows, err := DecomposeTimes(timeindex.DateTime, []time.Time{ts})
		require.NoError(t, err)
		assert.Equal(t, tt.hour12, rows[0].Hour12, "hour %d", tt.hour)
		assert.Equal(t, tt.amPm, rows[0].AmPm, "hour %d", tt.hour)
	}
}

func TestCoarseClassesEmitMidnightDefaults(t *testing.T) {
	rows, err := DecomposeTimes(timeindex.YearQuarter, []time.Time{
		time.Date(2013, 5, 17, 15, 0, 0, 0, time.UTC),
		time.Date(2013, 8, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	r := rows[0]
	assert.Equal(t, time.Date(2013, 4, 1, 0, 0, 0, 0, time.UTC), r.Index)
	assert.Equal(t, 0, r.Hour)
	assert.Equal(t, 0, r.Minute)
	assert.Equal(t, 0, r.Second)
	assert.Equal(t, 12, r.Hour12)
	assert.Equal(t, 1, r.AmPm)
	assert.Equal(t, 1, r.Qday)
	assert.Equal(t, 91.0*86400, rows[1].Diff)
}

func TestDateTimeUsesIndexLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 2013-01-01 23:00 UTC is 2013-01-02 08:00 in Tokyo.
	ts := time.Date(2013, 1, 2, 8, 0, 0, 0, tokyo)
	rows, err := DecomposeTimes(timeindex.DateTime, []time.Time{ts})
	require.NoError(t, err)
	assert.Equal(t, 2, rows[0].Mday)
	assert.Equal(t, 8, rows[0].Hour)
	assert.Equal(t, float64(time.Date(2013, 1, 1, 23, 0, 0, 0, time.UTC).Unix()), rows[0].IndexNum)
}

func TestValuesFollowColumns(t *testing.T) {
	rows, err := DecomposeTimes(timeindex.Date, []time.Time{time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	values := rows[0].Values()
	require.Len(t, values, len(Columns))
	assert.Equal(t, rows[0].Index, values[0])
	assert.Equal(t, "Jan", values[9])
	assert.Equal(t, "Tue", values[18])
	assert.Equal(t, 2013.0, values[3])
	assert.Equal(t, 1.0, values[28])

	assert.Len(t, NumericColumns(), 26)
	assert.Len(t, rows[0].Numeric(), 26)
	assert.NotContains(t, NumericColumns(), "month.lbl")
}
