package descriptive

import (
	"math"
	"sort"

	"tabstat/domain/core"
	"tabstat/domain/stats"
)

// Quantile returns the p-th percentile (0 <= p <= 100) by linear
// interpolation between order statistics at index p/100·(n-1)
func Quantile(data []float64, p float64) stats.Result {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return stats.Failf(core.ErrInvalidParameter, "percentile must be between 0 and 100, got %g", p)
	}
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	sort.Float64s(valid)
	return stats.OK(percentileLinear(valid, p))
}

// Q1 is the 25th percentile
func Q1(data []float64) stats.Result {
	return Quantile(data, 25)
}

// Q3 is the 75th percentile
func Q3(data []float64) stats.Result {
	return Quantile(data, 75)
}

// percentileLinear expects sorted, non-empty input
func percentileLinear(sorted []float64, p float64) float64 {
	n := len(sorted)
	index := p / 100.0 * float64(n-1)

	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	weight := index - float64(lower)

	if upper >= n {
		return sorted[n-1]
	}
	return sorted[lower]*(1.0-weight) + sorted[upper]*weight
}
