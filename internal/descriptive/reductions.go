package descriptive

import (
	"tabstat/domain/stats"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Sum returns the total of the valid values
func Sum(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	return fromLib(mstats.Sum(valid))
}

// Product returns the product of the valid values
func Product(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	return stats.OK(floats.Prod(valid))
}

// Count returns the number of valid values. It never fails.
func Count(data []float64) int {
	n := 0
	for _, v := range data {
		if isFinite(v) {
			n++
		}
	}
	return n
}

// Min returns the smallest valid value
func Min(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	return fromLib(mstats.Min(valid))
}

// Max returns the largest valid value
func Max(data []float64) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	return fromLib(mstats.Max(valid))
}
