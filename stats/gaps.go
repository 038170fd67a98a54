package stats

import (
	"math"
	"sort"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// DiffStats summarizes the gaps between consecutive instants, in seconds.
type DiffStats struct {
	Minimum float64
	Q1      float64
	Median  float64
	Mean    float64
	Q3      float64
	Maximum float64
}

// Regular reports whether every gap is identical. NaN stats are not regular.
func (d DiffStats) Regular() bool {
	return d.Minimum == d.Maximum
}

// Gaps returns the n-1 gaps between consecutive instants of idx in seconds.
func Gaps(idx *timeindex.Index) []float64 {
	n := idx.Len()
	if n < 2 {
		return []float64{}
	}

	gaps := make([]float64, n-1)
	for i := 1; i < n; i++ {
		gaps[i-1] = timeindex.Seconds(idx.At(i-1), idx.At(i))
	}
	return gaps
}

// Diff computes the quartile summary of the gaps of idx.
// With fewer than two instants every field is NaN.
func Diff(idx *timeindex.Index) DiffStats {
	return Describe(Gaps(idx))
}

// Describe computes min, quartiles, mean and max of values.
// An empty slice yields NaN in every field.
func Describe(values []float64) DiffStats {
	if len(values) == 0 {
		nan := math.NaN()
		return DiffStats{Minimum: nan, Q1: nan, Median: nan, Mean: nan, Q3: nan, Maximum: nan}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return DiffStats{
		Minimum: sorted[0],
		Q1:      Quantile(sorted, 0.25),
		Median:  Quantile(sorted, 0.5),
		Mean:    mean(sorted),
		Q3:      Quantile(sorted, 0.75),
		Maximum: sorted[len(sorted)-1],
	}
}

// Quantile returns the p-th quantile of sorted data using linear
// interpolation between order statistics (Hyndman-Fan type 7).
// The input must be sorted ascending.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Mode returns the most frequent value in values. Ties resolve to the
// smallest value. An empty slice yields NaN.
func Mode(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := math.NaN(), 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}

// ModeInt is Mode for integer steps such as day or month counts.
func ModeInt(values []int) int {
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := 0, 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}

func mean(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}
