package timeindex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		n        int
		expected time.Time
	}{
		{"simple", day(2013, 1, 1), 3, day(2013, 4, 1)},
		{"year carry", day(2013, 11, 1), 3, day(2014, 2, 1)},
		{"clamps to month end", day(2013, 1, 31), 1, day(2013, 2, 28)},
		{"leap february", day(2012, 1, 31), 1, day(2012, 2, 29)},
		{"backwards", day(2013, 1, 15), -2, day(2012, 11, 15)},
		{"keeps clock", time.Date(2013, 1, 31, 10, 30, 0, 0, time.UTC), 2, time.Date(2013, 3, 31, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.in, tt.n))
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 1, MonthsBetween(day(2013, 1, 31), day(2013, 2, 28)))
	assert.Equal(t, 14, MonthsBetween(day(2012, 11, 1), day(2014, 1, 1)))
	assert.Equal(t, 0, MonthsBetween(day(2013, 5, 1), day(2013, 5, 30)))
}

func TestDaysBetweenIgnoresDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	a := time.Date(2013, 3, 9, 9, 0, 0, 0, ny)
	b := time.Date(2013, 3, 11, 9, 0, 0, 0, ny)
	assert.Equal(t, 2, DaysBetween(a, b))
	assert.InDelta(t, 2*86400-3600, Seconds(a, b), 1e-9)
}

func TestSecondsSubSecond(t *testing.T) {
	a := time.Date(2013, 1, 1, 0, 0, 0, 500_000_000, time.UTC)
	b := time.Date(2013, 1, 1, 0, 0, 2, 0, time.UTC)
	assert.InDelta(t, 1.5, Seconds(a, b), 1e-9)
}
