package signature

import (
	"math"
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// Columns are the signature column names in row order.
var Columns = []string{
	"index", "index.num", "diff", "year", "year.iso", "half", "quarter",
	"month", "month.xts", "month.lbl", "day", "hour", "minute", "second",
	"hour12", "am.pm", "wday", "wday.xts", "wday.lbl", "mday", "qday", "yday",
	"mweek", "week", "week.iso", "week2", "week3", "week4", "mday7",
}

// LabelColumns hold categorical labels rather than numbers.
var LabelColumns = []string{"month.lbl", "wday.lbl"}

// Row is the calendar decomposition of one instant.
type Row struct {
	Index    time.Time
	IndexNum float64
	Diff     float64 // NaN on the first row
	Year     int
	YearISO  int
	Half     int
	Quarter  int
	Month    int
	MonthXts int
	MonthLbl string
	Day      int
	Hour     int
	Minute   int
	Second   int
	Hour12   int
	AmPm     int
	Wday     int
	WdayXts  int
	WdayLbl  string
	Mday     int
	Qday     int
	Yday     int
	Mweek    int
	Week     int
	WeekISO  int
	Week2    int
	Week3    int
	Week4    int
	Mday7    int
}

// Decompose returns one Row per instant of idx, in index order.
func Decompose(idx *timeindex.Index) []Row {
	rows := make([]Row, idx.Len())
	for i := range rows {
		rows[i] = decompose(idx.At(i))
		if i == 0 {
			rows[i].Diff = math.NaN()
		} else {
			rows[i].Diff = rows[i].IndexNum - rows[i-1].IndexNum
		}
	}
	return rows
}

// DecomposeTimes decomposes a bare sequence of instants of the given class.
func DecomposeTimes(class timeindex.Class, times []time.Time) ([]Row, error) {
	idx, err := timeindex.New(class, times)
	if err != nil {
		return nil, err
	}
	return Decompose(idx), nil
}

func decompose(t time.Time) Row {
	year, month, mday := t.Date()
	hour, minute, second := t.Clock()
	isoYear, isoWeek := t.ISOWeek()
	wday0 := int(t.Weekday())
	yday := t.YearDay()
	quarter := timeindex.Quarter(month)
	quarterStart := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	week := (yday - 1 + 7 - wday0) / 7

	return Row{
		Index:    t,
		IndexNum: float64(t.Unix()) + float64(t.Nanosecond())/1e9,
		Year:     year,
		YearISO:  isoYear,
		Half:     half(month),
		Quarter:  quarter,
		Month:    int(month),
		MonthXts: int(month) - 1,
		MonthLbl: month.String()[:3],
		Day:      mday,
		Hour:     hour,
		Minute:   minute,
		Second:   second,
		Hour12:   hour12(hour),
		AmPm:     amPm(hour),
		Wday:     wday0 + 1,
		WdayXts:  wday0,
		WdayLbl:  t.Weekday().String()[:3],
		Mday:     mday,
		Qday:     yday - quarterStart.YearDay() + 1,
		Yday:     yday,
		Mweek:    (mday - 1) / 7,
		Week:     week,
		WeekISO:  isoWeek,
		Week2:    week % 2,
		Week3:    week % 3,
		Week4:    week % 4,
		Mday7:    1 + (mday-1)/7,
	}
}

func half(m time.Month) int {
	if m <= time.June {
		return 1
	}
	return 2
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

func amPm(h int) int {
	if h < 12 {
		return 1
	}
	return 2
}

// Values returns the row's fields in Columns order. Index is a time.Time,
// labels are strings, and every other value is a float64.
func (r Row) Values() []any {
	values := []any{r.Index}
	for _, name := range Columns[1:] {
		if label, ok := r.label(name); ok {
			values = append(values, label)
			continue
		}
		values = append(values, r.number(name))
	}
	return values
}

// Numeric returns the numeric fields in Columns order, omitting index and
// the label columns.
func (r Row) Numeric() []float64 {
	names := NumericColumns()
	out := make([]float64, len(names))
	for i, name := range names {
		out[i] = r.number(name)
	}
	return out
}

// NumericColumns returns the names of the numeric signature columns.
func NumericColumns() []string {
	out := make([]string, 0, len(Columns)-1-len(LabelColumns))
	for _, name := range Columns[1:] {
		if !isLabel(name) {
			out = append(out, name)
		}
	}
	return out
}

func isLabel(name string) bool {
	for _, l := range LabelColumns {
		if l == name {
			return true
		}
	}
	return false
}

func (r Row) label(name string) (string, bool) {
	switch name {
	case "month.lbl":
		return r.MonthLbl, true
	case "wday.lbl":
		return r.WdayLbl, true
	}
	return "", false
}

func (r Row) number(name string) float64 {
	switch name {
	case "index.num":
		return r.IndexNum
	case "diff":
		return r.Diff
	case "year":
		return float64(r.Year)
	case "year.iso":
		return float64(r.YearISO)
	case "half":
		return float64(r.Half)
	case "quarter":
		return float64(r.Quarter)
	case "month":
		return float64(r.Month)
	case "month.xts":
		return float64(r.MonthXts)
	case "day":
		return float64(r.Day)
	case "hour":
		return float64(r.Hour)
	case "minute":
		return float64(r.Minute)
	case "second":
		return float64(r.Second)
	case "hour12":
		return float64(r.Hour12)
	case "am.pm":
		return float64(r.AmPm)
	case "wday":
		return float64(r.Wday)
	case "wday.xts":
		return float64(r.WdayXts)
	case "mday":
		return float64(r.Mday)
	case "qday":
		return float64(r.Qday)
	case "yday":
		return float64(r.Yday)
	case "mweek":
		return float64(r.Mweek)
	case "week":
		return float64(r.Week)
	case "week.iso":
		return float64(r.WeekISO)
	case "week2":
		return float64(r.Week2)
	case "week3":
		return float64(r.Week3)
	case "week4":
		return float64(r.Week4)
	case "mday7":
		return float64(r.Mday7)
	default:
		return math.NaN()
	}
}
