package descriptive

import (
	"math"

	"tabstat/domain/core"
	"tabstat/domain/stats"

	mstats "github.com/montanaflynn/stats"
)

// Variance returns the sample (divisor n-1) or population (divisor n) variance
func Variance(data []float64, sample bool) stats.Result {
	valid := ValidData(data)
	if len(valid) == 0 {
		return noValidData()
	}
	if sample {
		if len(valid) < 2 {
			return stats.Failf(core.ErrInsufficientData,
				"sample variance requires at least 2 values, got %d", len(valid))
		}
		return fromLib(mstats.SampleVariance(valid))
	}
	return fromLib(mstats.PopulationVariance(valid))
}

// StandardDeviation is the square root of Variance, failing when it fails
func StandardDeviation(data []float64, sample bool) stats.Result {
	v := Variance(data, sample)
	if !v.IsValid {
		return v
	}
	return stats.OK(math.Sqrt(v.Value))
}

// CoefficientOfVariation returns sample std dev / mean · 100
func CoefficientOfVariation(data []float64) stats.Result {
	mean := Mean(data)
	if !mean.IsValid {
		return mean
	}
	std := StandardDeviation(data, true)
	if !std.IsValid {
		return std
	}
	if mean.Value == 0 {
		return stats.Fail(core.ErrDegenerate, "coefficient of variation undefined: mean is zero")
	}
	return stats.OK(std.Value / mean.Value * 100.0)
}

// Range returns max - min
func Range(data []float64) stats.Result {
	lo := Min(data)
	if !lo.IsValid {
		return lo
	}
	hi := Max(data)
	if !hi.IsValid {
		return hi
	}
	return stats.OK(hi.Value - lo.Value)
}

// InterquartileRange returns Q3 - Q1
func InterquartileRange(data []float64) stats.Result {
	q1 := Q1(data)
	if !q1.IsValid {
		return q1
	}
	q3 := Q3(data)
	if !q3.IsValid {
		return q3
	}
	return stats.OK(q3.Value - q1.Value)
}
