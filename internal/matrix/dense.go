package matrix

import "gonum.org/v1/gonum/mat"

// ToDense copies a rectangular, non-empty matrix into a gonum Dense.
// It returns nil for empty or ragged input.
func ToDense(a Matrix) *mat.Dense {
	if a.IsEmpty() || a.Cols() == 0 || !a.IsRectangular() {
		return nil
	}
	rows, cols := a.Rows(), a.Cols()
	data := make([]float64, 0, rows*cols)
	for _, row := range a {
		data = append(data, row...)
	}
	return mat.NewDense(rows, cols, data)
}

// FromDense copies any gonum matrix into a Matrix
func FromDense(m mat.Matrix) Matrix {
	if m == nil {
		return Matrix{}
	}
	rows, cols := m.Dims()
	out := Zeros(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}
