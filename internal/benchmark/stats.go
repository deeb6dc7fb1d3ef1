package benchmark

import (
	"math"
	"sort"

	"github.com/marisa/content-optimizer/internal/types"
)

// zScore95 is the critical value for a 95% confidence interval.
const zScore95 = 1.96

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median returns the median of values, or 0 for an empty slice.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// populationStdDev returns the population standard deviation of values:
// sqrt(mean(squared deviations)), without Bessel's correction. The sample
// is the full competitor set, not a draw from a larger one.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// confidenceInterval95 returns the 95% confidence interval around the mean
// of values: mean ± 1.96 * (stddev / sqrt(n)).
func confidenceInterval95(values []float64) types.ConfidenceInterval {
	if len(values) == 0 {
		return types.ConfidenceInterval{}
	}
	m := mean(values)
	margin := zScore95 * (populationStdDev(values) / math.Sqrt(float64(len(values))))
	return types.ConfidenceInterval{
		Lower: m - margin,
		Upper: m + margin,
	}
}

// round3 rounds v to exactly 3 decimal places (0.1% of a percentage point,
// the precision keyword density targets are expressed at).
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// roundToInt rounds v to the nearest integer.
func roundToInt(v float64) int {
	return int(math.Round(v))
}
