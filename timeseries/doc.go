// Package timeseries provides the containers that carry a temporal index:
// Series (one value per timestamp), Frame (a heterogeneous table anchored on
// a time column) and Matrix (a homogeneous numeric table), plus CSV loading.
//
// Every container implements timeindex.Axis, so its index can be extracted
// with timeindex.Extract.
//
// # Loading from CSV
//
// The index class is detected from the first date unless CSVOptions.Class
// is set:
//
//	series, err := timeseries.LoadCSV("sales.csv", nil)
//	idx, err := series.Index()
//
// Recognized notations:
//
//	2013 Q1, 2013-Q1            YearQuarter
//	2013-01, Jan 2013, 2013 Jan YearMonth
//	2013-01-31, 01/31/2013      Date
//	2013-01-31T09:30:00Z        DateTime
//
// # Options
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
