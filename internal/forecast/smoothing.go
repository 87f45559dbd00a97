package forecast

import (
	"fmt"

	"tabstat/domain/core"
	"tabstat/domain/stats"
)

// ExponentialSmoothing applies level = α·xₜ + (1-α)·level seeded with the
// first observation and forecasts the terminal level for every period.
// Fitted holds the smoothed series; ErrorMetric is its MSE against data.
func ExponentialSmoothing(data []float64, alpha float64, periods int) stats.Forecast {
	if !validSmoothing("alpha", alpha) {
		return stats.FailedForecast(stats.ExponentialSmoothing, core.ErrInvalidParameter,
			fmt.Sprintf("alpha must be in (0, 1), got %g", alpha))
	}
	if len(data) == 0 {
		return stats.FailedForecast(stats.ExponentialSmoothing, core.ErrInsufficientData,
			insufficient(1, 0))
	}

	level := data[0]
	smoothed := make([]float64, 0, len(data))
	smoothed = append(smoothed, level)
	for _, x := range data[1:] {
		level = alpha*x + (1-alpha)*level
		smoothed = append(smoothed, level)
	}

	return complete(stats.ExponentialSmoothing, flat(level, periods), smoothed,
		CalculateMSE(data, smoothed))
}

// DoubleExponentialSmoothing is Holt's linear trend method seeded with
// level = data[0] and trend = data[1]-data[0]. The forecast at horizon h is
// level + h·trend. Fitted holds the one-step-ahead forecasts for data[1:].
func DoubleExponentialSmoothing(data []float64, alpha, beta float64, periods int) stats.Forecast {
	if !validSmoothing("alpha", alpha) {
		return stats.FailedForecast(stats.DoubleExponentialSmoothing, core.ErrInvalidParameter,
			fmt.Sprintf("alpha must be in (0, 1), got %g", alpha))
	}
	if !validSmoothing("beta", beta) {
		return stats.FailedForecast(stats.DoubleExponentialSmoothing, core.ErrInvalidParameter,
			fmt.Sprintf("beta must be in (0, 1), got %g", beta))
	}
	if len(data) < 2 {
		return stats.FailedForecast(stats.DoubleExponentialSmoothing, core.ErrInsufficientData,
			insufficient(2, len(data)))
	}

	level, trend := data[0], data[1]-data[0]
	fitted := make([]float64, 0, len(data)-1)
	for _, x := range data[1:] {
		fitted = append(fitted, level+trend)
		prev := level
		level = alpha*x + (1-alpha)*(level+trend)
		trend = beta*(level-prev) + (1-beta)*trend
	}

	predicted := make([]float64, 0, max(periods, 0))
	for h := 1; h <= periods; h++ {
		predicted = append(predicted, level+float64(h)*trend)
	}

	return complete(stats.DoubleExponentialSmoothing, predicted, fitted,
		CalculateMSE(data[1:], fitted))
}

func insufficient(required, got int) string {
	return fmt.Sprintf("insufficient data: requires at least %d values, got %d", required, got)
}
