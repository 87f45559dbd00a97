package api

import (
	"encoding/json"
	"net/http"

	"tabstat/domain/core"
	"tabstat/domain/stats"
	"tabstat/internal/descriptive"
	apperrors "tabstat/internal/errors"
	"tabstat/internal/forecast"
	"tabstat/internal/matrix"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSummary(c *gin.Context) {
	var req SummaryRequest
	if !s.bind(c, &req) {
		return
	}

	report := s.analyzer.AnalyzeValues(req.Column, req.Values)
	s.reply(c, SummaryResponse{
		RequestID:      c.GetString(requestIDKey),
		Column:         report.Column,
		Summary:        report.Summary,
		FiveNumber:     report.FiveNumber,
		Interpretation: report.Interpretation,
	})
}

func (s *Server) handleQuantile(c *gin.Context) {
	var req QuantileRequest
	if !s.bind(c, &req) {
		return
	}

	s.reply(c, ResultResponse{
		RequestID: c.GetString(requestIDKey),
		Result:    descriptive.Quantile(req.Values, *req.P),
	})
}

func (s *Server) handleForecast(c *gin.Context) {
	var req ForecastRequest
	if !s.bind(c, &req) {
		return
	}

	method, err := stats.ParseForecastMethod(req.Method)
	if err != nil {
		s.fail(c, apperrors.Wrap(err, err.Error()))
		return
	}

	fc := s.analyzer.Forecast(req.Values, method, forecast.Params{
		Window:  req.Window,
		Weights: req.Weights,
		Alpha:   req.Alpha,
		Beta:    req.Beta,
		Periods: req.Periods,
	})
	s.reply(c, ForecastResponse{RequestID: c.GetString(requestIDKey), Forecast: fc})
}

func (s *Server) handleDeterminant(c *gin.Context) {
	m, ok := s.bindSquare(c)
	if !ok {
		return
	}
	det, _ := matrix.Determinant(m)
	s.reply(c, DeterminantResponse{RequestID: c.GetString(requestIDKey), Determinant: det})
}

func (s *Server) handleInverse(c *gin.Context) {
	m, ok := s.bindSquare(c)
	if !ok {
		return
	}
	inv, ok := matrix.Inverse(m)
	if !ok {
		s.fail(c, apperrors.Wrap(core.ErrSingularMatrix, "matrix is singular"))
		return
	}
	s.reply(c, InverseResponse{RequestID: c.GetString(requestIDKey), Inverse: inv})
}

// bindSquare decodes a MatrixRequest and rejects ragged or non-square input
func (s *Server) bindSquare(c *gin.Context) (matrix.Matrix, bool) {
	var req MatrixRequest
	if !s.bind(c, &req) {
		return nil, false
	}
	m := matrix.Matrix(req.Matrix)
	if !m.IsEmpty() && !m.IsSquare() {
		s.fail(c, apperrors.Wrapf(core.ErrDimensionMismatch, "matrix must be square, got %d rows", m.Rows()))
		return nil, false
	}
	return m, true
}

func (s *Server) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		s.fail(c, apperrors.ValidationError("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// reply encodes body before writing it. Finite input can still overflow to
// ±Inf, which JSON cannot carry; such results answer 422.
func (s *Server) reply(c *gin.Context, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Warn("%s %s: unencodable result: %v", c.Request.Method, c.Request.URL.Path, err)
		s.fail(c, apperrors.New(apperrors.CodeNonFiniteResult, "result overflowed to a non-finite value"))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) fail(c *gin.Context, err error) {
	appErr := apperrors.FromDomain(err)
	status := apperrors.HTTPStatus(appErr)
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.GetString(requestIDKey),
		Code:      appErr.Code,
		Error:     appErr.Message,
	})
}
