package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"tabstat/internal"
	"tabstat/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Forecast ForecastConfig
	Analysis AnalysisConfig
	LogLevel internal.LogLevel
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port         string
	GinMode      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DataConfig holds the default data source
type DataConfig struct {
	File  string
	Sheet string
}

// ForecastConfig holds defaults for forecasting parameters not given by a request
type ForecastConfig struct {
	Window  int
	Alpha   float64
	Beta    float64
	Periods int
}

// AnalysisConfig holds analysis and reporting settings
type AnalysisConfig struct {
	MaxConcurrency int
	Precision      int
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			GinMode:      "release",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Data:     DataConfig{Sheet: "Sheet1"},
		Forecast: ForecastConfig{Window: 3, Alpha: 0.3, Beta: 0.1, Periods: 5},
		Analysis: AnalysisConfig{MaxConcurrency: 4, Precision: 4},
		LogLevel: internal.LogLevelInfo,
	}
}

// Load reads an optional .env file, then the environment, and validates the result
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, errors.Wrap(err, "failed to read .env file")
		}
	}
	return FromEnv()
}

// LoadFile reads the given env files before the environment. Variables already
// set in the process take precedence, as with godotenv.Load.
func LoadFile(paths ...string) (*Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		return nil, errors.Wrapf(err, "failed to read env files %v", paths)
	}
	return FromEnv()
}

// FromEnv builds the configuration from process environment variables only
func FromEnv() (*Config, error) {
	def := Default()
	config := &Config{}

	config.Server = ServerConfig{
		Port:         getEnvOrDefault("PORT", def.Server.Port),
		GinMode:      getEnvOrDefault("GIN_MODE", def.Server.GinMode),
		ReadTimeout:  getEnvDurationOrDefault("SERVER_READ_TIMEOUT", def.Server.ReadTimeout),
		WriteTimeout: getEnvDurationOrDefault("SERVER_WRITE_TIMEOUT", def.Server.WriteTimeout),
	}

	config.Data = DataConfig{
		File:  getEnvOrDefault("DATA_FILE", def.Data.File),
		Sheet: getEnvOrDefault("DATA_SHEET", def.Data.Sheet),
	}

	forecastConfig, err := loadForecastConfig(def.Forecast)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load forecast configuration")
	}
	config.Forecast = *forecastConfig

	config.Analysis = AnalysisConfig{
		MaxConcurrency: getEnvIntOrDefault("ANALYSIS_MAX_CONCURRENCY", def.Analysis.MaxConcurrency),
		Precision:      getEnvIntOrDefault("REPORT_PRECISION", def.Analysis.Precision),
	}

	config.LogLevel = def.LogLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, ok := internal.ParseLogLevel(raw)
		if !ok {
			return nil, errors.ConfigInvalid(fmt.Sprintf("LOG_LEVEL %q is not one of ERROR, WARN, INFO, DEBUG, TRACE", raw))
		}
		config.LogLevel = level
	}

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadForecastConfig(def ForecastConfig) (*ForecastConfig, error) {
	fc := &ForecastConfig{
		Window:  getEnvIntOrDefault("FORECAST_WINDOW", def.Window),
		Alpha:   getEnvFloatOrDefault("FORECAST_ALPHA", def.Alpha),
		Beta:    getEnvFloatOrDefault("FORECAST_BETA", def.Beta),
		Periods: getEnvIntOrDefault("FORECAST_PERIODS", def.Periods),
	}
	// Unparseable values are rejected rather than silently defaulted
	for _, key := range []string{"FORECAST_WINDOW", "FORECAST_PERIODS"} {
		if v := os.Getenv(key); v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				return nil, errors.ConfigInvalid(fmt.Sprintf("%s must be an integer, got %q", key, v))
			}
		}
	}
	for _, key := range []string{"FORECAST_ALPHA", "FORECAST_BETA"} {
		if v := os.Getenv(key); v != "" {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return nil, errors.ConfigInvalid(fmt.Sprintf("%s must be a number, got %q", key, v))
			}
		}
	}
	return fc, nil
}

// Validate checks ranges of every numeric setting
func Validate(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Forecast.Window <= 0 {
		return errors.ConfigInvalid("FORECAST_WINDOW must be positive")
	}
	if config.Forecast.Periods <= 0 {
		return errors.ConfigInvalid("FORECAST_PERIODS must be positive")
	}
	if config.Forecast.Alpha <= 0 || config.Forecast.Alpha >= 1 {
		return errors.ConfigInvalid("FORECAST_ALPHA must be in (0,1)")
	}
	if config.Forecast.Beta <= 0 || config.Forecast.Beta >= 1 {
		return errors.ConfigInvalid("FORECAST_BETA must be in (0,1)")
	}
	if config.Analysis.MaxConcurrency <= 0 {
		return errors.ConfigInvalid("ANALYSIS_MAX_CONCURRENCY must be positive")
	}
	if config.Analysis.Precision < 0 || config.Analysis.Precision > 15 {
		return errors.ConfigInvalid("REPORT_PRECISION must be between 0 and 15")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
