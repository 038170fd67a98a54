package signature

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
)

// Record is the Parquet layout of a Row. Column names replace the dots of
// Columns with underscores, and the first row's diff is null.
type Record struct {
	Index    time.Time `parquet:"index,snappy"`
	IndexNum float64   `parquet:"index_num,snappy"`
	Diff     *float64  `parquet:"diff,optional,snappy"`
	Year     int32     `parquet:"year,snappy"`
	YearISO  int32     `parquet:"year_iso,snappy"`
	Half     int32     `parquet:"half,snappy"`
	Quarter  int32     `parquet:"quarter,snappy"`
	Month    int32     `parquet:"month,snappy"`
	MonthXts int32     `parquet:"month_xts,snappy"`
	MonthLbl string    `parquet:"month_lbl,dict,snappy"`
	Day      int32     `parquet:"day,snappy"`
	Hour     int32     `parquet:"hour,snappy"`
	Minute   int32     `parquet:"minute,snappy"`
	Second   int32     `parquet:"second,snappy"`
	Hour12   int32     `parquet:"hour12,snappy"`
	AmPm     int32     `parquet:"am_pm,snappy"`
	Wday     int32     `parquet:"wday,snappy"`
	WdayXts  int32     `parquet:"wday_xts,snappy"`
	WdayLbl  string    `parquet:"wday_lbl,dict,snappy"`
	Mday     int32     `parquet:"mday,snappy"`
	Qday     int32     `parquet:"qday,snappy"`
	Yday     int32     `parquet:"yday,snappy"`
	Mweek    int32     `parquet:"mweek,snappy"`
	Week     int32     `parquet:"week,snappy"`
	WeekISO  int32     `parquet:"week_iso,snappy"`
	Week2    int32     `parquet:"week2,snappy"`
	Week3    int32     `parquet:"week3,snappy"`
	Week4    int32     `parquet:"week4,snappy"`
	Mday7    int32     `parquet:"mday7,snappy"`
}

// ToRecord converts a Row to its Parquet layout.
func ToRecord(r Row) Record {
	rec := Record{
		Index:    r.Index,
		IndexNum: r.IndexNum,
		Year:     int32(r.Year),
		YearISO:  int32(r.YearISO),
		Half:     int32(r.Half),
		Quarter:  int32(r.Quarter),
		Month:    int32(r.Month),
		MonthXts: int32(r.MonthXts),
		MonthLbl: r.MonthLbl,
		Day:      int32(r.Day),
		Hour:     int32(r.Hour),
		Minute:   int32(r.Minute),
		Second:   int32(r.Second),
		Hour12:   int32(r.Hour12),
		AmPm:     int32(r.AmPm),
		Wday:     int32(r.Wday),
		WdayXts:  int32(r.WdayXts),
		WdayLbl:  r.WdayLbl,
		Mday:     int32(r.Mday),
		Qday:     int32(r.Qday),
		Yday:     int32(r.Yday),
		Mweek:    int32(r.Mweek),
		Week:     int32(r.Week),
		WeekISO:  int32(r.WeekISO),
		Week2:    int32(r.Week2),
		Week3:    int32(r.Week3),
		Week4:    int32(r.Week4),
		Mday7:    int32(r.Mday7),
	}
	if !math.IsNaN(r.Diff) {
		diff := r.Diff
		rec.Diff = &diff
	}
	return rec
}

// WriteParquet writes rows to w as a Parquet file.
func WriteParquet(w io.Writer, rows []Row) error {
	records := make([]Record, len(rows))
	for i, r := range rows {
		records[i] = ToRecord(r)
	}

	writer := parquet.NewGenericWriter[Record](w)
	if _, err := writer.Write(records); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write signature rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteParquetFile writes rows to a Parquet file at path.
func WriteParquetFile(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return writeAndClose(file, rows)
}

// writeAndClose writes rows to wc and closes it, reporting the close error
// when the write succeeded.
func writeAndClose(wc io.WriteCloser, rows []Row) error {
	if err := WriteParquet(wc, rows); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
