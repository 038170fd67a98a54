// Package stats describes the gaps between consecutive instants of a time
// index.
//
// # Gap statistics
//
// Gaps are measured in seconds. Describe reduces them to the minimum,
// quartiles (sample quantile type 7), mean and maximum; an index with fewer
// than two instants yields NaN for every statistic.
//
//	d := stats.Diff(idx)
//	if d.Regular() {
//	    // every gap equals d.Minimum
//	}
//
// # Scale
//
// Classify maps the median gap onto the coarsest scale whose canonical
// duration fits: second, minute, hour, day, week, month, quarter or year.
// Calendar scales tolerate months, quarters and years that are a little
// shorter than their average length, so a monthly series with 30 day gaps is
// still monthly.
//
//	scale := stats.ClassifyIndex(idx) // stats.Month
//
// # Summary
//
// Summarize bundles the extent, units, scale, time zone and gap statistics
// of an index into one record:
//
//	s := stats.Summarize(idx)
//	for _, f := range s.Fields() {
//	    fmt.Println(f.Name, f.Value)
//	}
package stats
