package testkit

import (
	"math"
	"math/rand"
)

// SeriesGeneratorConfig configures a synthetic numeric column:
// value(t) = Intercept + Slope·t + Amplitude·sin(2πt/Period) + N(0, NoiseStdDev)
// for t = 1..Length, with a MissingRate share of cells replaced by NaN.
type SeriesGeneratorConfig struct {
	Length      int     `json:"length"`
	Intercept   float64 `json:"intercept"`
	Slope       float64 `json:"slope"`
	Amplitude   float64 `json:"amplitude"`
	Period      int     `json:"period"`
	NoiseStdDev float64 `json:"noise_std_dev"`
	MissingRate float64 `json:"missing_rate"`
	Seed        int64   `json:"seed"`
}

// DefaultSeriesConfig returns a gently trending monthly series with noise
func DefaultSeriesConfig() SeriesGeneratorConfig {
	return SeriesGeneratorConfig{
		Length:      48,
		Intercept:   100,
		Slope:       1.5,
		Amplitude:   10,
		Period:      12,
		NoiseStdDev: 2,
		Seed:        42,
	}
}

// SeriesGenerator produces deterministic synthetic columns for tests
type SeriesGenerator struct {
	config SeriesGeneratorConfig
	rng    *rand.Rand
}

// NewSeriesGenerator creates a generator seeded from config.Seed
func NewSeriesGenerator(config SeriesGeneratorConfig) *SeriesGenerator {
	return &SeriesGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns a fresh series. Two generators with the same config
// produce identical output.
func (g *SeriesGenerator) Generate() []float64 {
	out := make([]float64, g.config.Length)
	for i := range out {
		t := float64(i + 1)
		v := g.config.Intercept + g.config.Slope*t
		if g.config.Period > 0 && g.config.Amplitude != 0 {
			v += g.config.Amplitude * math.Sin(2*math.Pi*t/float64(g.config.Period))
		}
		if g.config.NoiseStdDev > 0 {
			v += g.rng.NormFloat64() * g.config.NoiseStdDev
		}
		if g.config.MissingRate > 0 && g.rng.Float64() < g.config.MissingRate {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

// Linear returns intercept + slope·t for t = 1..n
func Linear(n int, intercept, slope float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = intercept + slope*float64(i+1)
	}
	return out
}

// Constant returns n copies of v
func Constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// WithInvalid returns a copy of data with NaN, +Inf and -Inf interleaved
func WithInvalid(data []float64) []float64 {
	sentinels := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	out := make([]float64, 0, len(data)*2)
	for i, v := range data {
		out = append(out, sentinels[i%len(sentinels)], v)
	}
	return append(out, math.NaN())
}
