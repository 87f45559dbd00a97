package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotProduct(t *testing.T) {
	assert.Equal(t, 32.0, DotProduct([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, 0.0, DotProduct([]float64{1, 2}, []float64{1}))
	assert.Equal(t, 0.0, DotProduct(nil, nil))
}

func TestNorm(t *testing.T) {
	v := []float64{3, -4}
	assert.InDelta(t, 5.0, Norm(v, 2), tol)
	assert.InDelta(t, 5.0, Norm2(v), tol)
	assert.InDelta(t, 7.0, Norm(v, 1), tol)
	assert.InDelta(t, math.Cbrt(27+64), Norm(v, 3), tol)
	assert.True(t, math.IsNaN(Norm(v, 0)))
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{3, 4})
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, got, tol)
	assert.InDelta(t, 1.0, Norm2(got), tol)
}

func TestNormalizeZeroVectorUnchanged(t *testing.T) {
	v := []float64{0, 0, 0}
	got := Normalize(v)
	assert.Equal(t, v, got)
	for _, x := range got {
		assert.False(t, math.IsNaN(x))
	}
}

func TestRowAndColumnReductions(t *testing.T) {
	a := Matrix{{1, 2, 3}, {4, 5, 6}}

	assert.Equal(t, []float64{6, 15}, RowSum(a))
	assert.Equal(t, []float64{5, 7, 9}, ColumnSum(a))
	assert.Equal(t, []float64{2, 5}, RowMean(a))
	assert.Equal(t, []float64{2.5, 3.5, 4.5}, ColumnMean(a))
}

func TestReductionsOnEdgeShapes(t *testing.T) {
	assert.Empty(t, RowSum(Matrix{}))
	assert.Empty(t, ColumnSum(Matrix{}))
	assert.Empty(t, ColumnMean(Matrix{}))
	assert.Nil(t, ColumnSum(Matrix{{1, 2}, {3}}))
	assert.Equal(t, []float64{0, 2}, RowMean(Matrix{{}, {1, 3}}))
}
