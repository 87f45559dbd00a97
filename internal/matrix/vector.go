package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DotProduct returns Σ a[i]·b[i]. Vectors of different length yield 0.
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		logger.Debug("DotProduct: length mismatch %d vs %d", len(a), len(b))
		return 0
	}
	return floats.Dot(a, b)
}

// Norm returns the p-norm (Σ|v|^p)^(1/p). p must be at least 1, otherwise
// the norm is undefined and NaN is returned. Use Norm2 for the Euclidean norm.
func Norm(v []float64, p int) float64 {
	if p < 1 {
		return math.NaN()
	}
	return floats.Norm(v, float64(p))
}

// Norm2 returns the Euclidean norm
func Norm2(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Normalize divides v by its Euclidean norm. A zero vector is returned
// unchanged (as a copy) instead of producing NaN.
func Normalize(v []float64) []float64 {
	out := append([]float64(nil), v...)
	n := Norm2(v)
	if n == 0 {
		return out
	}
	floats.Scale(1/n, out)
	return out
}

// RowSum returns the sum of each row
func RowSum(a Matrix) []float64 {
	out := make([]float64, len(a))
	for i, row := range a {
		out[i] = floats.Sum(row)
	}
	return out
}

// ColumnSum returns the sum of each column of a rectangular matrix.
// A ragged matrix yields nil.
func ColumnSum(a Matrix) []float64 {
	if a.IsEmpty() {
		return []float64{}
	}
	if !a.IsRectangular() {
		logger.Debug("ColumnSum: ragged input")
		return nil
	}
	out := make([]float64, a.Cols())
	for _, row := range a {
		floats.Add(out, row)
	}
	return out
}

// RowMean returns the mean of each row; empty rows have mean 0
func RowMean(a Matrix) []float64 {
	sums := RowSum(a)
	for i := range sums {
		if len(a[i]) > 0 {
			sums[i] /= float64(len(a[i]))
		}
	}
	return sums
}

// ColumnMean returns the mean of each column of a rectangular matrix
func ColumnMean(a Matrix) []float64 {
	sums := ColumnSum(a)
	if len(sums) == 0 {
		return sums
	}
	floats.Scale(1/float64(a.Rows()), sums)
	return sums
}
