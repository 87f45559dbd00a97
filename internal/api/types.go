package api

import (
	"encoding/json"
	"math"

	"tabstat/domain/stats"
)

// Values is a JSON number array in which null marks a missing cell (NaN)
type Values []float64

// UnmarshalJSON accepts numbers and nulls
func (v *Values) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = nil
		return nil
	}
	out := make(Values, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *p
	}
	*v = out
	return nil
}

// SummaryRequest is the body of POST /api/v1/summary
type SummaryRequest struct {
	Column string `json:"column"`
	Values Values `json:"values" binding:"required"`
}

// SummaryResponse carries the column analysis
type SummaryResponse struct {
	RequestID      string               `json:"request_id"`
	Column         string               `json:"column,omitempty"`
	Summary        stats.Summary        `json:"summary"`
	FiveNumber     stats.FiveNumber     `json:"five_number"`
	Interpretation stats.Interpretation `json:"interpretation"`
}

// QuantileRequest is the body of POST /api/v1/quantile
type QuantileRequest struct {
	Values Values   `json:"values" binding:"required"`
	P      *float64 `json:"p" binding:"required"`
}

// ResultResponse carries one scalar result
type ResultResponse struct {
	RequestID string       `json:"request_id"`
	Result    stats.Result `json:"result"`
}

// ForecastRequest is the body of POST /api/v1/forecast. Zero-valued
// parameters fall back to the server defaults.
type ForecastRequest struct {
	Values  Values    `json:"values" binding:"required"`
	Method  string    `json:"method" binding:"required"`
	Window  int       `json:"window"`
	Weights []float64 `json:"weights"`
	Alpha   float64   `json:"alpha"`
	Beta    float64   `json:"beta"`
	Periods int       `json:"periods"`
}

// ForecastResponse carries the forecast envelope
type ForecastResponse struct {
	RequestID string         `json:"request_id"`
	Forecast  stats.Forecast `json:"forecast"`
}

// MatrixRequest is the body of the matrix endpoints
type MatrixRequest struct {
	Matrix [][]float64 `json:"matrix" binding:"required"`
}

// DeterminantResponse carries a determinant
type DeterminantResponse struct {
	RequestID   string  `json:"request_id"`
	Determinant float64 `json:"determinant"`
}

// InverseResponse carries an inverse matrix
type InverseResponse struct {
	RequestID string      `json:"request_id"`
	Inverse   [][]float64 `json:"inverse"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Error     string `json:"error"`
}
