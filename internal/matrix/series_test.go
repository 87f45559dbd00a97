package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	data := []float64{1, 4, 9, 16, 25}
	assert.Equal(t, []float64{3, 5, 7, 9}, Diff(data, 1))
	assert.Equal(t, []float64{8, 12, 16}, Diff(data, 2))
	assert.Empty(t, Diff(data, 5))
	assert.Nil(t, Diff(data, 0))
}

func TestPercentChange(t *testing.T) {
	got := PercentChange([]float64{100, 110, 99}, 1)
	require.Len(t, got, 2)
	assert.InDelta(t, 10.0, got[0], tol)
	assert.InDelta(t, -10.0, got[1], tol)
}

func TestPercentChangeNearZeroBaseIsNaN(t *testing.T) {
	got := PercentChange([]float64{0, 5, 1e-12, 3}, 1)
	require.Len(t, got, 3)
	assert.True(t, math.IsNaN(got[0]))
	assert.InDelta(t, (1e-12-5)/5*100, got[1], tol)
	assert.True(t, math.IsNaN(got[2]))
}

func TestPercentChangeInvalidPeriods(t *testing.T) {
	assert.Nil(t, PercentChange([]float64{1, 2}, -1))
	assert.Empty(t, PercentChange([]float64{1}, 1))
}
