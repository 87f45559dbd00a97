package descriptive

import (
	"math"
	"sort"

	"tabstat/domain/core"
	"tabstat/domain/stats"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

const msgNoValidData = "no valid data"

// ValidData returns a new slice holding the finite values of data in order
func ValidData(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func noValidData() stats.Result {
	return stats.Fail(core.ErrNoValidData, msgNoValidData)
}

// fromLib adapts a montanaflynn/stats (value, error) pair
func fromLib(value float64, err error) stats.Result {
	if err != nil {
		return stats.Fail(core.ErrNoValidData, err.Error())
	}
	return stats.OK(value)
}

// Mean returns the arithmetic mean of the valid values
func Mean(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	return fromLib(mstats.Mean(valid))
}

// WeightedMean returns Σ wᵢxᵢ / Σ wᵢ over pairs where both sides are finite.
// data and weights must have equal length; a zero weight sum fails.
func WeightedMean(data, weights []float64) stats.Result {
	if len(data) != len(weights) {
		return stats.Failf(core.ErrDimensionMismatch,
			"weights length %d does not match data length %d", len(weights), len(data))
	}

	xs := make([]float64, 0, len(data))
	ws := make([]float64, 0, len(data))
	var sumWeights float64
	for i := range data {
		if isFinite(data[i]) && isFinite(weights[i]) {
			xs = append(xs, data[i])
			ws = append(ws, weights[i])
			sumWeights += weights[i]
		}
	}
	if sumWeights == 0 {
		return stats.Fail(core.ErrDegenerate, "sum of weights is zero")
	}
	return stats.OK(stat.Mean(xs, ws))
}

// Median returns the middle value of the sorted valid data, averaging the
// two central values when the count is even
func Median(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	return fromLib(mstats.Median(valid))
}

// Mode returns the most frequent valid value. Values are grouped by exact
// floating-point equality, so continuous data usually has every value tied
// at frequency 1. Ties resolve to the smallest value.
func Mode(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	sort.Float64s(valid)

	mode, best := valid[0], 0
	for i := 0; i < len(valid); {
		j := i
		for j < len(valid) && valid[j] == valid[i] {
			j++
		}
		if j-i > best {
			best = j - i
			mode = valid[i]
		}
		i = j
	}
	return stats.OK(mode)
}

// GeometricMean returns exp(mean(log x)). Every valid value must be strictly positive.
func GeometricMean(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	if !allPositive(valid) {
		return stats.Fail(core.ErrInvalidParameter, "geometric mean requires all values to be positive")
	}
	return stats.OK(stat.GeometricMean(valid, nil))
}

// HarmonicMean returns n / Σ(1/x). Every valid value must be strictly positive.
func HarmonicMean(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	if !allPositive(valid) {
		return stats.Fail(core.ErrInvalidParameter, "harmonic mean requires all values to be positive")
	}
	return fromLib(mstats.HarmonicMean(valid))
}

func allPositive(values []float64) bool {
	for _, v := range values {
		if v <= 0 {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
