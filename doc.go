// Package gotimeindex inspects and extends the time index of a series.
//
// gotimeindex turns the timestamps of a series into features and facts that
// forecasting and machine-learning code can consume directly: a calendar
// signature per instant, a statistical summary of the index, and the
// sequence of instants that should follow it.
//
// # Packages
//
//   - timeindex: index classes (Date, DateTime, YearMonth, YearQuarter) and
//     the immutable Index type
//   - signature: per-instant calendar decomposition and Parquet export
//   - stats: gap statistics, scale classification and index summaries
//   - future: projection of the instants that follow an index
//   - timeseries: series, frames and CSV input/output
//
// # Quick Start
//
// Load a series and inspect its index:
//
//	series, _ := timeseries.LoadCSV("sales.csv", nil)
//	idx, _ := series.Index()
//	summary := stats.Summarize(idx)
//	fmt.Println(summary.Scale, summary.DiffMedian)
//
// Decompose every instant into calendar features:
//
//	rows := signature.Decompose(idx)
//	fmt.Println(rows[0].WdayLbl, rows[0].Week)
//
// Add the features as columns of a numeric matrix:
//
//	m, _ := signature.AugmentSeries(series)
//
// Project the next 12 instants:
//
//	next, _ := future.Make(idx, 12)
//	fmt.Println(next.Strings())
//
// # Command line
//
// The tsig command in cmd/tsig exposes the summary, signature and future
// operations for CSV files.
package gotimeindex
