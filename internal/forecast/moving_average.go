package forecast

import (
	"tabstat/domain/core"
	"tabstat/domain/stats"
)

// SimpleMovingAverage forecasts the mean of the last window observations for
// every period. Fitted values are the rolling means of the window preceding
// each observation from index window on; ErrorMetric is their MSE.
func SimpleMovingAverage(data []float64, window, periods int) stats.Forecast {
	if window <= 0 {
		return stats.FailedForecast(stats.SimpleMovingAverage, core.ErrInvalidParameter,
			"window must be positive")
	}
	if len(data) < window {
		return stats.FailedForecast(stats.SimpleMovingAverage, core.ErrInsufficientData,
			insufficient(window, len(data)))
	}

	fitted := make([]float64, 0, len(data)-window)
	for i := window; i < len(data); i++ {
		fitted = append(fitted, mean(data[i-window:i]))
	}
	last := mean(data[len(data)-window:])

	return complete(stats.SimpleMovingAverage, flat(last, periods), fitted,
		CalculateMSE(data[window:], fitted))
}

// WeightedMovingAverage forecasts Σ wᵢxᵢ / Σ wᵢ over the last len(weights)
// observations, the first weight applying to the oldest. Fitted values and
// ErrorMetric follow SimpleMovingAverage.
func WeightedMovingAverage(data, weights []float64, periods int) stats.Forecast {
	window := len(weights)
	if window == 0 {
		return stats.FailedForecast(stats.WeightedMovingAverage, core.ErrInvalidParameter,
			"weights must not be empty")
	}
	if len(data) < window {
		return stats.FailedForecast(stats.WeightedMovingAverage, core.ErrInsufficientData,
			insufficient(window, len(data)))
	}

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	if weightSum == 0 {
		return stats.FailedForecast(stats.WeightedMovingAverage, core.ErrDegenerate,
			"sum of weights is zero")
	}

	weighted := func(segment []float64) float64 {
		var sum float64
		for i, w := range weights {
			sum += segment[i] * w
		}
		return sum / weightSum
	}

	fitted := make([]float64, 0, len(data)-window)
	for i := window; i < len(data); i++ {
		fitted = append(fitted, weighted(data[i-window:i]))
	}
	last := weighted(data[len(data)-window:])

	return complete(stats.WeightedMovingAverage, flat(last, periods), fitted,
		CalculateMSE(data[window:], fitted))
}

// CenteredMovingAverage returns the mean of each window centered on
// data[i] for i in [window/2, len(data)-window/2). An even window is widened
// by one so a center element exists; window 0 therefore acts as 1 and
// returns a copy of data. A negative window yields nil.
func CenteredMovingAverage(data []float64, window int) []float64 {
	if window < 0 {
		logger.Debug("CenteredMovingAverage: window must not be negative, got %d", window)
		return nil
	}
	if window%2 == 0 {
		logger.Warn("CenteredMovingAverage: window %d is even, using %d", window, window+1)
		window++
	}

	half := window / 2
	if len(data) < window {
		return []float64{}
	}
	out := make([]float64, 0, len(data)-2*half)
	for i := half; i < len(data)-half; i++ {
		out = append(out, mean(data[i-half:i+half+1]))
	}
	return out
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
