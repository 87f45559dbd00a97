// Package forecast produces point forecasts from a historical series.
//
// Every method returns a stats.Forecast: parameter violations and short
// series yield IsValid == false with a message, never a Go error. Accuracy
// metrics (MSE, MAE, MAPE) return NaN when they are undefined.
//
// Kernels consume the series as given; strip NaN cells (descriptive.ValidData)
// before calling them.
package forecast
