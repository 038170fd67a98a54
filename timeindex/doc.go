// Package timeindex defines the temporal index shared by the signature,
// stats and future packages.
//
// An Index is an ordered, immutable sequence of instants tagged with one of
// four classes:
//
//   - Date: civil dates, held as midnight UTC
//   - DateTime: instants in a single location
//   - YearMonth: calendar months, held as the first of the month
//   - YearQuarter: calendar quarters, held as the first of the quarter
//
// # Building an Index
//
//	idx, err := timeindex.New(timeindex.Date, dates)
//
// Instants must be in non-decreasing order; New returns ErrInvalidOrder
// otherwise.
//
// # Extracting from a container
//
// Extract accepts the civil value slices, []time.Time, or any container that
// implements Axis:
//
//	idx, err := timeindex.Extract([]timeindex.CivilYearMonth{
//	    {Year: 2013, Month: time.January},
//	    {Year: 2013, Month: time.February},
//	})
//	if errors.Is(err, timeindex.ErrUnsupportedIndexClass) {
//	    // not a temporal axis
//	}
//
// # Calendar arithmetic
//
// AddMonths, MonthsBetween and DaysBetween step and measure in calendar
// units, so month and quarter sequences never drift with month length.
package timeindex
