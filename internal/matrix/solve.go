package matrix

import "math"

// Solve solves a·x = b by Gaussian elimination with partial pivoting followed
// by back-substitution. ok is false when a is not square, len(b) differs from
// its size, or a pivot is negligible relative to its column: |pivot| at or
// below PivotTolerance times the largest |a[i][col]|.
func Solve(a Matrix, b []float64) (x []float64, ok bool) {
	n := a.Rows()
	if n == 0 || !a.IsSquare() || len(b) != n {
		logger.Debug("Solve: expected square system, got %dx%d with rhs %d", a.Rows(), a.Cols(), len(b))
		return nil, false
	}

	scale := make([]float64, n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			scale[col] = math.Max(scale[col], math.Abs(a[row][col]))
		}
	}

	work := a.Clone()
	rhs := append([]float64(nil), b...)

	for col := 0; col < n; col++ {
		pivot := pivotRow(work, col, col)
		work[col], work[pivot] = work[pivot], work[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		if math.Abs(work[col][col]) <= PivotTolerance*scale[col] {
			logger.Debug("Solve: singular system at column %d", col)
			return nil, false
		}

		for row := col + 1; row < n; row++ {
			factor := work[row][col] / work[col][col]
			for k := col; k < n; k++ {
				work[row][k] -= factor * work[col][k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	x = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= work[i][j] * x[j]
		}
		x[i] = sum / work[i][i]
	}
	return x, true
}
