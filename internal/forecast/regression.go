package forecast

import (
	"tabstat/domain/core"
	"tabstat/domain/stats"
	"tabstat/internal/matrix"
)

// LinearRegression fits y = a + b·x over x = 1..n and forecasts a + b·(n+h)
// for h = 1..periods. ErrorMetric is the in-sample MSE.
func LinearRegression(data []float64, periods int) stats.Forecast {
	n := len(data)
	if n < 2 {
		return stats.FailedForecast(stats.LinearRegression, core.ErrInsufficientData,
			insufficient(2, n))
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}
	coeffs := LeastSquares(x, data, 1)
	if len(coeffs) < 2 {
		return stats.FailedForecast(stats.LinearRegression, core.ErrDegenerate, "regression failed")
	}
	a, b := coeffs[0], coeffs[1]

	fitted := make([]float64, n)
	for i, xi := range x {
		fitted[i] = a + b*xi
	}
	predicted := make([]float64, 0, max(periods, 0))
	for h := 1; h <= periods; h++ {
		predicted = append(predicted, a+b*float64(n+h))
	}

	return complete(stats.LinearRegression, predicted, fitted, CalculateMSE(data, fitted))
}

// LeastSquares fits a polynomial of the given degree and returns its
// coefficients c₀..c_degree, lowest power first. It solves the normal
// equations (XᵀX)c = Xᵀy. An empty result means the fit is undefined:
// mismatched lengths, fewer than degree+1 points, or a singular system.
func LeastSquares(x, y []float64, degree int) []float64 {
	n, m := len(x), degree+1
	if degree < 0 || len(y) != n {
		logger.Debug("LeastSquares: invalid input, degree %d, len(x)=%d, len(y)=%d", degree, n, len(y))
		return nil
	}
	if n < m {
		logger.Warn("LeastSquares: %d points cannot fit a degree %d polynomial", n, degree)
		return nil
	}

	design := matrix.Zeros(n, m)
	for i, xi := range x {
		power := 1.0
		for j := 0; j < m; j++ {
			design[i][j] = power
			power *= xi
		}
	}

	xt := matrix.Transpose(design)
	normal := matrix.Multiply(xt, design)
	rhs := matrix.Column(matrix.Multiply(xt, matrix.ColumnVector(y)), 0)

	coeffs, ok := matrix.Solve(normal, rhs)
	if !ok {
		logger.Debug("LeastSquares: normal equations are singular")
		return nil
	}
	return coeffs
}
