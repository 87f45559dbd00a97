package descriptive

import (
	"math"
	"testing"

	"tabstat/domain/core"
	"tabstat/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestVariance(t *testing.T) {
	sample := Variance(oneToFive, true)
	require.True(t, sample.IsValid)
	assert.InDelta(t, 2.5, sample.Value, tol)

	population := Variance(oneToFive, false)
	require.True(t, population.IsValid)
	assert.InDelta(t, 2.0, population.Value, tol)

	std := StandardDeviation(oneToFive, true)
	require.True(t, std.IsValid)
	assert.InDelta(t, 1.5811388300841898, std.Value, tol)
}

func TestVarianceSingleValue(t *testing.T) {
	r := Variance([]float64{42}, true)
	assert.False(t, r.IsValid)
	assert.Contains(t, r.ErrorMessage, "at least 2 values")
	assert.ErrorIs(t, r.Err(), core.ErrInsufficientData)

	r = Variance([]float64{42}, false)
	require.True(t, r.IsValid)
	assert.Equal(t, 0.0, r.Value)

	assert.False(t, StandardDeviation([]float64{42}, true).IsValid)
}

func TestVarianceMatchesGonum(t *testing.T) {
	config := testkit.DefaultSeriesConfig()
	config.Length = 200
	data := testkit.NewSeriesGenerator(config).Generate()

	r := Variance(data, true)
	require.True(t, r.IsValid)
	assert.InDelta(t, stat.Variance(data, nil), r.Value, 1e-6)

	std := StandardDeviation(data, true)
	require.True(t, std.IsValid)
	assert.InDelta(t, math.Sqrt(r.Value), std.Value, tol)
}

func TestVarianceIgnoresInvalid(t *testing.T) {
	clean := Variance(oneToFive, true)
	dirty := Variance(testkit.WithInvalid(oneToFive), true)
	require.True(t, dirty.IsValid)
	assert.InDelta(t, clean.Value, dirty.Value, tol)
}

func TestCoefficientOfVariation(t *testing.T) {
	r := CoefficientOfVariation(oneToFive)
	require.True(t, r.IsValid)
	assert.InDelta(t, 1.5811388300841898/3*100, r.Value, 1e-9)

	r = CoefficientOfVariation([]float64{-1, 1})
	assert.False(t, r.IsValid)
	assert.ErrorIs(t, r.Err(), core.ErrDegenerate)

	assert.False(t, CoefficientOfVariation([]float64{5}).IsValid)
}

func TestInterquartileRange(t *testing.T) {
	r := InterquartileRange(oneToFive)
	require.True(t, r.IsValid)
	assert.InDelta(t, 2.0, r.Value, tol)
}
