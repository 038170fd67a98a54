// Package future projects the instants that follow a historical time index.
//
// A Plan is inferred from the history: regular indexes repeat their single
// gap, YearMonth and YearQuarter indexes and month-scale dates step by whole
// calendar months, and day-scale dates that skip some weekdays keep to the
// observed weekday slots. Anything else repeats the modal gap.
//
// Example:
//
//	idx := timeindex.MustNew(timeindex.Date, mon, tue, wed, thu, fri)
//	next, err := future.Make(idx, 3) // next Mon, Tue, Wed
package future
