package matrix

// Identity returns the n×n identity matrix; n <= 0 yields an empty matrix
func Identity(n int) Matrix {
	out := Zeros(n, n)
	for i := range out {
		out[i][i] = 1.0
	}
	return out
}

// Zeros returns a rows×cols matrix of zeros; non-positive sizes yield an empty matrix
func Zeros(rows, cols int) Matrix {
	if rows <= 0 {
		return Matrix{}
	}
	if cols < 0 {
		cols = 0
	}
	out := make(Matrix, rows)
	backing := make([]float64, rows*cols)
	for i := range out {
		out[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out
}

// Submatrix returns rows rowStart..rowEnd and columns colStart..colEnd,
// both inclusive. Ranges are clamped to the matrix edges rather than
// reported as errors; negative starts are clamped to 0.
func Submatrix(a Matrix, rowStart, rowEnd, colStart, colEnd int) Matrix {
	if rowStart < 0 {
		rowStart = 0
	}
	if colStart < 0 {
		colStart = 0
	}
	out := Matrix{}
	for i := rowStart; i <= rowEnd && i < len(a); i++ {
		row := []float64{}
		for j := colStart; j <= colEnd && j < len(a[i]); j++ {
			row = append(row, a[i][j])
		}
		out = append(out, row)
	}
	return out
}

// Horzcat places b to the right of a. Row counts must match.
func Horzcat(a, b Matrix) Matrix {
	if a.Rows() != b.Rows() {
		logger.Debug("Horzcat: row count mismatch %d vs %d", a.Rows(), b.Rows())
		return nil
	}
	out := make(Matrix, len(a))
	for i := range a {
		row := make([]float64, 0, len(a[i])+len(b[i]))
		row = append(row, a[i]...)
		out[i] = append(row, b[i]...)
	}
	return out
}

// Vertcat stacks b below a. When both are non-empty their column counts must match.
func Vertcat(a, b Matrix) Matrix {
	if !a.IsEmpty() && !b.IsEmpty() && (a.Cols() != b.Cols() || !a.IsRectangular() || !b.IsRectangular()) {
		logger.Debug("Vertcat: column count mismatch %d vs %d", a.Cols(), b.Cols())
		return nil
	}
	out := make(Matrix, 0, len(a)+len(b))
	out = append(out, a.Clone()...)
	return append(out, b.Clone()...)
}

// Column returns column j of a as a new slice, nil when j is out of range
func Column(a Matrix, j int) []float64 {
	if j < 0 || j >= a.Cols() {
		return nil
	}
	out := make([]float64, len(a))
	for i, row := range a {
		if j < len(row) {
			out[i] = row[j]
		}
	}
	return out
}

// ColumnVector turns v into a len(v)×1 matrix
func ColumnVector(v []float64) Matrix {
	out := Zeros(len(v), 1)
	for i, x := range v {
		out[i][0] = x
	}
	return out
}
