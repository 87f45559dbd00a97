package descriptive

import (
	"tabstat/domain/core"
	"tabstat/domain/stats"
)

// Skewness returns Σ((x-mean)/s)³ / n, where s is the sample standard
// deviation. At least 3 valid values are required; flat data has skewness 0.
func Skewness(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) < 3 {
		return stats.Failf(core.ErrInsufficientData, "skewness requires at least 3 values, got %d", len(valid))
	}
	mean, std := moments(valid)
	if std == 0 {
		return stats.OK(0)
	}

	var sum float64
	for _, v := range valid {
		z := (v - mean) / std
		sum += z * z * z
	}
	return stats.OK(sum / float64(len(valid)))
}

// Kurtosis returns Σ((x-mean)/s)⁴ / n, the raw (non-excess) kurtosis, where s
// is the sample standard deviation. A normal sample gives roughly 3.
// At least 4 valid values are required and flat data fails.
func Kurtosis(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) < 4 {
		return stats.Failf(core.ErrInsufficientData, "kurtosis requires at least 4 values, got %d", len(valid))
	}
	mean, std := moments(valid)
	if std == 0 {
		return stats.Fail(core.ErrDegenerate, "kurtosis undefined: standard deviation is zero")
	}

	var sum float64
	for _, v := range valid {
		z := (v - mean) / std
		sum += z * z * z * z
	}
	return stats.OK(sum / float64(len(valid)))
}

// moments expects at least 2 valid values
func moments(valid []float64) (mean, std float64) {
	return Mean(valid).Value, StandardDeviation(valid, true).Value
}
