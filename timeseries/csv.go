package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string          // Column name for dates (default: first of ds/date/Date/Month/Quarter/Year)
	ValueColumn string          // Column name for values (optional)
	IDColumn    string          // Column name for series ID (optional, for filtering)
	IDFilter    string          // Value to filter by ID column
	DateFormat  string          // Extra Date or DateTime layout tried first (optional)
	Class       timeindex.Class // Index class; zero detects it from the first date
	HasHeader   bool            // Whether CSV has header row (default: true)
	Delimiter   rune            // Field delimiter (default: ',')
	SkipRows    int             // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

var (
	dateLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006",
	}
	dateTimeLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02T15:04",
	}
	yearMonthLayouts = []string{
		"2006-01",
		"2006/01",
		"Jan 2006",
		"January 2006",
		"2006 Jan",
		"2006 January",
	}
	yearQuarterRe = regexp.MustCompile(`^(\d{4})\s*-?\s*[Qq]([1-4])$`)
)

// ParseTime parses s as an instant of the given class and returns its
// canonical time.
func ParseTime(s string, class timeindex.Class, extraLayout string) (time.Time, error) {
	s = strings.TrimSpace(strings.Trim(s, "\""))
	var layouts []string
	switch class {
	case timeindex.Date:
		layouts = dateLayouts
	case timeindex.DateTime:
		layouts = dateTimeLayouts
	case timeindex.YearMonth:
		layouts = yearMonthLayouts
	case timeindex.YearQuarter:
		if m := yearQuarterRe.FindStringSubmatch(s); m != nil {
			year, _ := strconv.Atoi(m[1])
			quarter, _ := strconv.Atoi(m[2])
			return timeindex.CivilYearQuarter{Year: year, Quarter: quarter}.Time(), nil
		}
		return time.Time{}, fmt.Errorf("cannot parse %q as a year quarter", s)
	default:
		return time.Time{}, fmt.Errorf("%w: %s", timeindex.ErrUnsupportedIndexClass, class)
	}

	if extraLayout != "" && layoutClass(extraLayout) == class {
		layouts = append([]string{extraLayout}, layouts...)
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return class.Canonical(ts), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a %s", s, class)
}

// DetectClass returns the first class whose layouts parse s. Quarters are
// tried first, then months, dates and timestamps.
func DetectClass(s string, extraLayout string) (timeindex.Class, error) {
	for _, class := range []timeindex.Class{timeindex.YearQuarter, timeindex.YearMonth, timeindex.Date, timeindex.DateTime} {
		if _, err := ParseTime(s, class, extraLayout); err == nil {
			return class, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a recognized date", timeindex.ErrUnsupportedIndexClass, s)
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader. Every row must
// carry a parseable date; a missing or unparseable value becomes NaN.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx, idIdx := -1, -1, -1
	valueName := opts.ValueColumn

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		// Find column indices
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case opts.ValueColumn != "" && h == opts.ValueColumn:
				valueIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case opts.DateColumn == "" && isDateHeader(h):
				if dateIdx == -1 {
					dateIdx = i
				}
			case opts.IDColumn != "" && h == opts.IDColumn:
				idIdx = i
			case opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value"):
				if valueIdx == -1 {
					valueIdx = i
					valueName = h
				}
			}
		}

		if dateIdx == -1 {
			if opts.DateColumn != "" {
				return nil, fmt.Errorf("date column %q not found", opts.DateColumn)
			}
			dateIdx = 0
		}
		if valueIdx == -1 && opts.ValueColumn != "" {
			return nil, fmt.Errorf("value column %q not found", opts.ValueColumn)
		}
	} else {
		// No header - use column indices
		dateIdx = 0  // Assume first column is date
		valueIdx = 1 // Assume second column is value
	}

	class := opts.Class
	var values []float64
	var timestamps []time.Time
	line := 0

	// Read data rows
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		// Filter by ID if specified
		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			id := strings.TrimSpace(strings.Trim(record[idIdx], "\""))
			if id != opts.IDFilter {
				continue
			}
		}

		if dateIdx >= len(record) {
			return nil, fmt.Errorf("row %d: missing date column", line)
		}
		dateStr := record[dateIdx]
		if class == 0 {
			class, err = DetectClass(dateStr, opts.DateFormat)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
		}
		ts, err := parseAs(dateStr, class, opts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		timestamps = append(timestamps, ts)
		values = append(values, parseValue(record, valueIdx))
	}

	if len(timestamps) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       valueName,
		Class:      class,
	}, nil
}

// parseAs parses s as class. When the class was forced by the caller, a
// finer notation is accepted and mapped onto the class, so 2013-03-20 reads
// as March 2013 in a YearMonth load.
func parseAs(s string, class timeindex.Class, opts *CSVOptions) (time.Time, error) {
	ts, err := ParseTime(s, class, opts.DateFormat)
	if err == nil || opts.Class == 0 {
		return ts, err
	}
	detected, derr := DetectClass(s, opts.DateFormat)
	if derr != nil {
		return time.Time{}, err
	}
	ts, derr = ParseTime(s, detected, opts.DateFormat)
	if derr != nil {
		return time.Time{}, err
	}
	return class.Canonical(ts), nil
}

// layoutClass reports DateTime for layouts with clock fields and Date
// otherwise.
func layoutClass(layout string) timeindex.Class {
	if strings.ContainsAny(layout, ":") || strings.Contains(layout, "15") || strings.Contains(layout, "03") {
		return timeindex.DateTime
	}
	return timeindex.Date
}

func isDateHeader(h string) bool {
	switch h {
	case "ds", "date", "Date", "time", "Time", "timestamp", "Month", "Quarter", "Year":
		return true
	}
	return false
}

func parseValue(record []string, idx int) float64 {
	if idx < 0 || idx >= len(record) {
		return math.NaN()
	}
	valStr := strings.TrimSpace(strings.Trim(record[idx], "\""))
	if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
		return math.NaN()
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return math.NaN()
	}
	return val
}

// SaveCSV saves a time series to a CSV file with dates in the native
// notation of the series class.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(series, file)
}

// WriteCSV writes a time series as "ds,y" rows. NaN values are written as NA.
func WriteCSV(series *Series, w io.Writer) error {
	writer := bufio.NewWriter(w)
	class := series.IndexClass()

	if _, err := writer.WriteString("ds,y\n"); err != nil {
		return err
	}
	for i, ts := range series.Timestamps {
		writer.WriteString(class.Format(ts))
		writer.WriteString(",")
		if i < len(series.Values) && !math.IsNaN(series.Values[i]) {
			writer.WriteString(strconv.FormatFloat(series.Values[i], 'f', -1, 64))
		} else {
			writer.WriteString("NA")
		}
		writer.WriteString("\n")
	}

	return writer.Flush()
}
