package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"tabstat/domain/core"
)

// ============================================================================
// SCALAR RESULTS
// ============================================================================

// Result is the envelope returned by every scalar statistic.
// INVARIANTS:
// - IsValid == false means Value must not be consumed
// - ErrorMessage is non-empty exactly when IsValid is false
type Result struct {
	Value        float64 `json:"value"`
	IsValid      bool    `json:"is_valid"`
	ErrorMessage string  `json:"error_message,omitempty"`

	// Cause is the domain sentinel behind a failure (core.ErrNoValidData, ...).
	Cause error `json:"-"`
}

// OK wraps a successfully computed value
func OK(value float64) Result {
	return Result{Value: value, IsValid: true}
}

// Fail builds a failed result for the given domain cause
func Fail(cause error, message string) Result {
	if message == "" {
		message = "computation failed"
	}
	return Result{IsValid: false, ErrorMessage: message, Cause: cause}
}

// Failf builds a failed result with a formatted message
func Failf(cause error, format string, args ...interface{}) Result {
	return Fail(cause, fmt.Sprintf(format, args...))
}

// Err converts a failed result into an error that matches its cause via errors.Is.
// It returns nil for valid results.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	cause := r.Cause
	if cause == nil {
		cause = core.ErrInvalidResult
	}
	return fmt.Errorf("%w: %s", cause, r.ErrorMessage)
}

// ValueOr returns the value when valid and def otherwise
func (r Result) ValueOr(def float64) float64 {
	if !r.IsValid {
		return def
	}
	return r.Value
}

// ============================================================================
// SUMMARY RECORD
// ============================================================================

// Summary aggregates the descriptive statistics of one sample.
// An empty sample yields the zero value (Count == 0, every statistic 0).
type Summary struct {
	Count    int     `json:"count"`
	Sum      float64 `json:"sum"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Mode     float64 `json:"mode"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// IsEmpty reports whether the summary was computed over no valid values
func (s Summary) IsEmpty() bool {
	return s.Count == 0
}

// FiveNumber is the box-plot view of a summary
type FiveNumber struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// FiveNumber extracts min, q1, median, q3 and max
func (s Summary) FiveNumber() FiveNumber {
	return FiveNumber{Min: s.Min, Q1: s.Q1, Median: s.Median, Q3: s.Q3, Max: s.Max}
}

// ============================================================================
// FORECASTS
// ============================================================================

// ForecastMethod selects a forecasting algorithm
type ForecastMethod int

const (
	SimpleMovingAverage ForecastMethod = iota
	WeightedMovingAverage
	ExponentialSmoothing
	DoubleExponentialSmoothing
	LinearRegression
)

var forecastMethodNames = map[ForecastMethod]string{
	SimpleMovingAverage:        "sma",
	WeightedMovingAverage:      "wma",
	ExponentialSmoothing:       "es",
	DoubleExponentialSmoothing: "des",
	LinearRegression:           "linear",
}

// String returns the short method name used by the CLI and API
func (m ForecastMethod) String() string {
	if name, ok := forecastMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ForecastMethod(%d)", int(m))
}

// ParseForecastMethod accepts short names ("sma") and long names ("simple_moving_average")
func ParseForecastMethod(s string) (ForecastMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sma", "simple_moving_average", "moving_average":
		return SimpleMovingAverage, nil
	case "wma", "weighted_moving_average":
		return WeightedMovingAverage, nil
	case "es", "ses", "exponential_smoothing":
		return ExponentialSmoothing, nil
	case "des", "holt", "double_exponential_smoothing":
		return DoubleExponentialSmoothing, nil
	case "linear", "lr", "linear_regression":
		return LinearRegression, nil
	}
	return 0, fmt.Errorf("%w: unknown forecast method %q", core.ErrInvalidParameter, s)
}

// MarshalText lets methods appear as strings in JSON
func (m ForecastMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses short or long method names
func (m *ForecastMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseForecastMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Forecast is the envelope returned by every forecasting method.
// Predicted holds one value per requested period; the caller owns all slices.
type Forecast struct {
	Method       ForecastMethod `json:"method"`
	Predicted    []float64      `json:"predicted"`
	Fitted       []float64      `json:"fitted,omitempty"`
	LowerBound   []float64      `json:"lower_bound,omitempty"`
	UpperBound   []float64      `json:"upper_bound,omitempty"`
	ErrorMetric  float64        `json:"error_metric"`
	IsValid      bool           `json:"is_valid"`
	ErrorMessage string         `json:"error_message,omitempty"`

	Cause error `json:"-"`
}

// FailedForecast builds an invalid forecast envelope
func FailedForecast(method ForecastMethod, cause error, message string) Forecast {
	return Forecast{
		Method:       method,
		Predicted:    []float64{},
		ErrorMetric:  math.NaN(),
		IsValid:      false,
		ErrorMessage: message,
		Cause:        cause,
	}
}

// Err converts an invalid forecast into an error, nil when valid
func (f Forecast) Err() error {
	if f.IsValid {
		return nil
	}
	cause := f.Cause
	if cause == nil {
		cause = core.ErrInvalidResult
	}
	return fmt.Errorf("%w: %s", cause, f.ErrorMessage)
}

// MarshalJSON writes non-finite metrics as null since JSON has no NaN
func (f Forecast) MarshalJSON() ([]byte, error) {
	type alias Forecast
	var metric *float64
	if !math.IsNaN(f.ErrorMetric) && !math.IsInf(f.ErrorMetric, 0) {
		m := f.ErrorMetric
		metric = &m
	}
	return json.Marshal(struct {
		alias
		ErrorMetric *float64 `json:"error_metric"`
	}{alias: alias(f), ErrorMetric: metric})
}
