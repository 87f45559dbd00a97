package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"tabstat/internal/analysis"
	"tabstat/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestServer() *Server {
	cfg := config.Default()
	cfg.Server.GinMode = gin.TestMode
	return NewServer(cfg, analysis.NewAnalyzer(cfg))
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDIsEchoed(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestSummary(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/summary",
		`{"column":"units","values":[1,2,null,3,4,5]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := rec.Body.String()
	assert.Equal(t, rec.Header().Get(RequestIDHeader), gjson.Get(body, "request_id").String())
	assert.Equal(t, "units", gjson.Get(body, "column").String())
	assert.Equal(t, int64(5), gjson.Get(body, "summary.count").Int())
	assert.InDelta(t, 3.0, gjson.Get(body, "summary.mean").Float(), 1e-12)
	assert.InDelta(t, 2.5, gjson.Get(body, "summary.variance").Float(), 1e-12)
	assert.InDelta(t, 4.0, gjson.Get(body, "five_number.q3").Float(), 1e-12)
	assert.Equal(t, "approximately symmetric", gjson.Get(body, "interpretation.skewness").String())
}

func TestSummaryEmptySample(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/summary", `{"values":[null]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), gjson.Get(rec.Body.String(), "summary.count").Int())
}

func TestQuantile(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/v1/quantile", `{"values":[4,1,3,2],"p":25}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "result.is_valid").Bool())
	assert.InDelta(t, 1.75, gjson.Get(rec.Body.String(), "result.value").Float(), 1e-12)

	rec = do(t, s, http.MethodPost, "/api/v1/quantile", `{"values":[1,2],"p":150}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gjson.Get(rec.Body.String(), "result.is_valid").Bool())
	assert.Contains(t, gjson.Get(rec.Body.String(), "result.error_message").String(), "between 0 and 100")

	rec = do(t, s, http.MethodPost, "/api/v1/quantile", `{"values":[1,2]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForecast(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/v1/forecast",
		`{"values":[1,2,3,4,5],"method":"sma","window":3,"periods":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fc := gjson.Get(rec.Body.String(), "forecast")
	assert.Equal(t, "sma", fc.Get("method").String())
	assert.True(t, fc.Get("is_valid").Bool())
	predicted := fc.Get("predicted").Array()
	require.Len(t, predicted, 2)
	assert.InDelta(t, 4.0, predicted[0].Float(), 1e-12)
	assert.InDelta(t, 4.0, predicted[1].Float(), 1e-12)
	assert.InDelta(t, 4.0, fc.Get("error_metric").Float(), 1e-12)
	assert.Len(t, fc.Get("upper_bound").Array(), 2)
}

func TestForecastInvalidEnvelope(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/forecast",
		`{"values":[1],"method":"linear","periods":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	fc := gjson.Get(rec.Body.String(), "forecast")
	assert.False(t, fc.Get("is_valid").Bool())
	assert.Equal(t, gjson.Null, fc.Get("error_metric").Type)
	assert.NotEmpty(t, fc.Get("error_message").String())
}

func TestForecastUnknownMethod(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/forecast", `{"values":[1,2],"method":"arima"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", gjson.Get(rec.Body.String(), "code").String())
}

func TestMalformedJSON(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/summary", `{"values":[1,2`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", gjson.Get(rec.Body.String(), "code").String())
	assert.NotEmpty(t, gjson.Get(rec.Body.String(), "request_id").String())
}

func TestDeterminant(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/v1/matrix/determinant", `{"matrix":[[2,0,0],[0,3,0],[0,0,4]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 24.0, gjson.Get(rec.Body.String(), "determinant").Float(), 1e-12)

	rec = do(t, s, http.MethodPost, "/api/v1/matrix/determinant", `{"matrix":[[1,2,3],[4,5,6]]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "DIMENSION_MISMATCH", gjson.Get(rec.Body.String(), "code").String())
}

func TestInverse(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/v1/matrix/inverse", `{"matrix":[[4,7],[2,6]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	inv := gjson.Get(rec.Body.String(), "inverse")
	assert.InDelta(t, 0.6, inv.Get("0.0").Float(), 1e-12)
	assert.InDelta(t, -0.7, inv.Get("0.1").Float(), 1e-12)
	assert.InDelta(t, -0.2, inv.Get("1.0").Float(), 1e-12)
	assert.InDelta(t, 0.4, inv.Get("1.1").Float(), 1e-12)

	rec = do(t, s, http.MethodPost, "/api/v1/matrix/inverse", `{"matrix":[[1,2],[2,4]]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "SINGULAR_MATRIX", gjson.Get(rec.Body.String(), "code").String())
}

func TestOverflowingResultsAreRejected(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"summary sum", "/api/v1/summary", `{"values":[1e308,1e308,1e308]}`},
		{"forecast mean", "/api/v1/forecast", `{"values":[1e308,1e308,1e308],"method":"sma","window":3,"periods":1}`},
		{"determinant", "/api/v1/matrix/determinant", `{"matrix":[[1e200,0],[0,1e200]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			assert.Equal(t, "NON_FINITE_RESULT", gjson.Get(rec.Body.String(), "code").String())
			assert.NotEmpty(t, gjson.Get(rec.Body.String(), "request_id").String())
		})
	}
}
