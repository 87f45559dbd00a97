package matrix

import "math"

// Determinant returns det(a). ok is false only for non-square input.
//
// 0x0 yields 0; 1x1 and 2x2 use direct formulas; larger matrices use LU
// elimination with partial pivoting, flipping the sign on every row swap.
// Any pivot with magnitude below PivotTolerance makes the result exactly 0.
func Determinant(a Matrix) (det float64, ok bool) {
	if !a.IsEmpty() && !a.IsSquare() {
		logger.Debug("Determinant: non-square %dx%d", a.Rows(), a.Cols())
		return 0, false
	}

	n := a.Rows()
	switch n {
	case 0:
		return 0, true
	case 1:
		return a[0][0], true
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0], true
	}

	lu := a.Clone()
	det = 1.0
	for i := 0; i < n; i++ {
		pivot := pivotRow(lu, i, i)
		if pivot != i {
			lu[i], lu[pivot] = lu[pivot], lu[i]
			det = -det
		}

		if math.Abs(lu[i][i]) < PivotTolerance {
			return 0, true
		}
		det *= lu[i][i]

		for row := i + 1; row < n; row++ {
			factor := lu[row][i] / lu[i][i]
			for col := i; col < n; col++ {
				lu[row][col] -= factor * lu[i][col]
			}
		}
	}
	return det, true
}

// Inverse returns a⁻¹ by Gauss–Jordan elimination on [a | I] with partial
// pivoting. ok is false when a is non-square, |det(a)| is below
// PivotTolerance, or any pivot falls below PivotTolerance. The inverse of a
// 0x0 matrix is empty.
func Inverse(a Matrix) (inv Matrix, ok bool) {
	if a.IsEmpty() {
		return Matrix{}, true
	}
	det, ok := Determinant(a)
	if !ok || math.Abs(det) < PivotTolerance {
		logger.Debug("Inverse: matrix is not invertible")
		return nil, false
	}

	n := a.Rows()
	work := a.Clone()
	inv = Identity(n)

	for col := 0; col < n; col++ {
		pivot := pivotRow(work, col, col)
		work[col], work[pivot] = work[pivot], work[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		pivotValue := work[col][col]
		if math.Abs(pivotValue) < PivotTolerance {
			logger.Debug("Inverse: pivot %g below tolerance at column %d", pivotValue, col)
			return nil, false
		}

		for j := 0; j < n; j++ {
			work[col][j] /= pivotValue
			inv[col][j] /= pivotValue
		}

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := work[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				work[row][j] -= factor * work[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}
	return inv, true
}

// pivotRow returns the row index in [from, n) with the largest |m[row][col]|
func pivotRow(m Matrix, col, from int) int {
	pivot := from
	for row := from + 1; row < len(m); row++ {
		if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
			pivot = row
		}
	}
	return pivot
}
