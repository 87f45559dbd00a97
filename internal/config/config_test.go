package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tabstat/internal"
	"tabstat/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "GIN_MODE", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"DATA_FILE", "DATA_SHEET",
	"FORECAST_WINDOW", "FORECAST_ALPHA", "FORECAST_BETA", "FORECAST_PERIODS",
	"ANALYSIS_MAX_CONCURRENCY", "REPORT_PRECISION", "LOG_LEVEL",
}

// clearEnv blanks every configuration variable; empty values mean "use the default"
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("FORECAST_WINDOW", "5")
	t.Setenv("FORECAST_ALPHA", "0.5")
	t.Setenv("FORECAST_PERIODS", "12")
	t.Setenv("ANALYSIS_MAX_CONCURRENCY", "8")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Forecast.Window)
	assert.Equal(t, 0.5, cfg.Forecast.Alpha)
	assert.Equal(t, 12, cfg.Forecast.Periods)
	assert.Equal(t, 8, cfg.Analysis.MaxConcurrency)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, internal.LogLevelDebug, cfg.LogLevel)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"FORECAST_ALPHA", "1.5"},
		{"FORECAST_ALPHA", "abc"},
		{"FORECAST_BETA", "0"},
		{"FORECAST_WINDOW", "0"},
		{"FORECAST_WINDOW", "three"},
		{"FORECAST_PERIODS", "-1"},
		{"ANALYSIS_MAX_CONCURRENCY", "0"},
		{"REPORT_PRECISION", "40"},
		{"LOG_LEVEL", "LOUD"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_FILE=sales.xlsx\nDATA_SHEET=Q1\nFORECAST_BETA=0.2\n"), 0o644))

	// godotenv.Load only fills unset variables; t.Setenv restores them afterwards
	clearEnv(t)
	for _, key := range []string{"DATA_FILE", "DATA_SHEET", "FORECAST_BETA"} {
		os.Unsetenv(key)
	}

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sales.xlsx", cfg.Data.File)
	assert.Equal(t, "Q1", cfg.Data.Sheet)
	assert.Equal(t, 0.2, cfg.Forecast.Beta)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}
