// Package signature decomposes every instant of a temporal index into a
// fixed set of calendar features.
//
// # Columns
//
// Decompose returns one Row per instant with these columns, in order:
//
//	index       the instant
//	index.num   seconds since 1970-01-01T00:00:00Z
//	diff        index.num minus the previous index.num (NaN on the first row)
//	year        calendar year
//	year.iso    ISO-8601 week-numbering year
//	half        1 or 2
//	quarter     1-4
//	month       1-12
//	month.xts   0-11
//	month.lbl   Jan..Dec
//	day         day of month
//	hour        0-23
//	minute      0-59
//	second      0-59
//	hour12      1-12
//	am.pm       1 = AM, 2 = PM
//	wday        1-7, Sunday = 1
//	wday.xts    0-6, Sunday = 0
//	wday.lbl    Sun..Sat
//	mday        day of month
//	qday        day of quarter
//	yday        day of year
//	mweek       (mday-1) div 7
//	week        week of year, weeks start on Sunday, week 0 before the first Sunday
//	week.iso    ISO-8601 week
//	week2       week mod 2
//	week3       week mod 3
//	week4       week mod 4
//	mday7       1 + (mday-1) div 7, the occurrence of the weekday within the month
//
// Date, YearMonth and YearQuarter instants decompose as midnight UTC on their
// canonical day, so their time-of-day fields read 0, hour12 12 and am.pm 1.
//
// # Augmenting containers
//
//	framed, err := signature.AugmentFrame(frame)   // keeps label columns
//	matrix, err := signature.AugmentSeries(series) // numeric only, drops labels
//
// # Export
//
//	err := signature.WriteParquetFile("signature.parquet", rows)
package signature
