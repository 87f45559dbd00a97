package matrix

import (
	"tabstat/internal"
)

// PivotTolerance is the magnitude below which an elimination pivot marks the matrix singular
const PivotTolerance = 1e-10

// Matrix is a dense matrix, rows outer and columns inner
type Matrix [][]float64

var logger = internal.DefaultLogger.WithComponent("Matrix")

// Rows returns the number of rows
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, 0 for an empty matrix
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsEmpty reports whether m has no rows. Failed operations return an empty matrix.
func (m Matrix) IsEmpty() bool {
	return len(m) == 0
}

// IsSquare reports whether m is rectangular with as many rows as columns
func (m Matrix) IsSquare() bool {
	return m.IsRectangular() && m.Rows() == m.Cols()
}

// IsRectangular reports whether every row has the same length
func (m Matrix) IsRectangular() bool {
	cols := m.Cols()
	for _, row := range m {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no row storage with m
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Equal reports element-wise equality within tol
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if !sameShape(m, other) {
		return false
	}
	for i := range m {
		for j := range m[i] {
			d := m[i][j] - other[i][j]
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

func sameShape(a, b Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
	}
	return a.IsRectangular()
}

// Add returns a + b element-wise, or an empty matrix when the shapes differ
func Add(a, b Matrix) Matrix {
	return elementwise(a, b, "Add", func(x, y float64) float64 { return x + y })
}

// Subtract returns a - b element-wise, or an empty matrix when the shapes differ
func Subtract(a, b Matrix) Matrix {
	return elementwise(a, b, "Subtract", func(x, y float64) float64 { return x - y })
}

func elementwise(a, b Matrix, op string, fn func(x, y float64) float64) Matrix {
	if !sameShape(a, b) {
		logger.Debug("%s: dimension mismatch %dx%d vs %dx%d", op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
		return nil
	}
	out := make(Matrix, len(a))
	for i := range a {
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = fn(a[i][j], b[i][j])
		}
	}
	return out
}

// MultiplyScalar scales every element of a by scalar
func MultiplyScalar(a Matrix, scalar float64) Matrix {
	out := make(Matrix, len(a))
	for i, row := range a {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v * scalar
		}
	}
	return out
}

// Multiply returns the matrix product a·b. It returns an empty matrix when
// either operand is empty or ragged, or when a.Cols() != b.Rows().
// Complexity: O(n·m·p).
func Multiply(a, b Matrix) Matrix {
	if a.IsEmpty() || b.IsEmpty() || !a.IsRectangular() || !b.IsRectangular() {
		logger.Debug("Multiply: empty or ragged operand")
		return nil
	}
	rowsA, colsA, colsB := a.Rows(), a.Cols(), b.Cols()
	if colsA != b.Rows() {
		logger.Debug("Multiply: dimension mismatch %dx%d · %dx%d", rowsA, colsA, b.Rows(), colsB)
		return nil
	}

	out := Zeros(rowsA, colsB)
	for i := 0; i < rowsA; i++ {
		for j := 0; j < colsB; j++ {
			var sum float64
			for k := 0; k < colsA; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Transpose swaps rows and columns. A ragged input yields an empty matrix.
func Transpose(a Matrix) Matrix {
	if a.IsEmpty() {
		return Matrix{}
	}
	if !a.IsRectangular() {
		logger.Debug("Transpose: ragged input")
		return nil
	}
	rows, cols := a.Rows(), a.Cols()
	out := Zeros(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}
