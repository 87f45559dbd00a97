package forecast

import (
	"math"

	"tabstat/domain/core"
	"tabstat/domain/stats"
	"tabstat/internal"
)

// BoundZ is the normal quantile used for the prediction envelope (95%)
const BoundZ = 1.96

var logger = internal.DefaultLogger.WithComponent("Forecasting")

// Params carries the tuning knobs of every method; each method reads only
// the fields it needs
type Params struct {
	Window  int       `json:"window,omitempty"`
	Weights []float64 `json:"weights,omitempty"`
	Alpha   float64   `json:"alpha,omitempty"`
	Beta    float64   `json:"beta,omitempty"`
	Periods int       `json:"periods,omitempty"`
}

// Run dispatches to the method's kernel
func Run(method stats.ForecastMethod, data []float64, p Params) stats.Forecast {
	switch method {
	case stats.SimpleMovingAverage:
		return SimpleMovingAverage(data, p.Window, p.Periods)
	case stats.WeightedMovingAverage:
		return WeightedMovingAverage(data, p.Weights, p.Periods)
	case stats.ExponentialSmoothing:
		return ExponentialSmoothing(data, p.Alpha, p.Periods)
	case stats.DoubleExponentialSmoothing:
		return DoubleExponentialSmoothing(data, p.Alpha, p.Beta, p.Periods)
	case stats.LinearRegression:
		return LinearRegression(data, p.Periods)
	}
	logger.Debug("Run: unknown method %d", int(method))
	return stats.FailedForecast(method, core.ErrInvalidParameter, "unknown forecast method")
}

// flat repeats value for periods steps; periods <= 0 gives an empty slice
func flat(value float64, periods int) []float64 {
	out := make([]float64, 0, max(periods, 0))
	for i := 0; i < periods; i++ {
		out = append(out, value)
	}
	return out
}

// complete builds a valid forecast and attaches the ±BoundZ·√MSE envelope
// when the metric is finite
func complete(method stats.ForecastMethod, predicted, fitted []float64, mse float64) stats.Forecast {
	f := stats.Forecast{
		Method:      method,
		Predicted:   predicted,
		Fitted:      fitted,
		ErrorMetric: mse,
		IsValid:     true,
	}
	if math.IsNaN(mse) || math.IsInf(mse, 0) || len(predicted) == 0 {
		return f
	}

	margin := BoundZ * math.Sqrt(mse)
	f.LowerBound = make([]float64, len(predicted))
	f.UpperBound = make([]float64, len(predicted))
	for i, p := range predicted {
		f.LowerBound[i] = p - margin
		f.UpperBound[i] = p + margin
	}
	return f
}

func validSmoothing(name string, v float64) bool {
	if v <= 0 || v >= 1 || math.IsNaN(v) {
		logger.Debug("%s=%g outside (0, 1)", name, v)
		return false
	}
	return true
}
