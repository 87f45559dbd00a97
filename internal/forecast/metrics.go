package forecast

import "math"

// MAPEZeroTolerance is the magnitude at or below which an actual value is
// excluded from CalculateMAPE
const MAPEZeroTolerance = 1e-9

// CalculateMSE is the mean squared error. NaN when the series differ in
// length or are empty.
func CalculateMSE(actual, predicted []float64) float64 {
	if !sameLength(actual, predicted) {
		return math.NaN()
	}
	var sum float64
	for i := range actual {
		e := actual[i] - predicted[i]
		sum += e * e
	}
	return sum / float64(len(actual))
}

// CalculateMAE is the mean absolute error, NaN under the same conditions as CalculateMSE
func CalculateMAE(actual, predicted []float64) float64 {
	if !sameLength(actual, predicted) {
		return math.NaN()
	}
	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual))
}

// CalculateMAPE is the mean absolute percentage error in percent. Terms whose
// actual value is near zero are skipped; NaN when none remain.
func CalculateMAPE(actual, predicted []float64) float64 {
	if !sameLength(actual, predicted) {
		return math.NaN()
	}
	var sum float64
	count := 0
	for i := range actual {
		if math.Abs(actual[i]) > MAPEZeroTolerance {
			sum += math.Abs((actual[i] - predicted[i]) / actual[i])
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count) * 100.0
}

func sameLength(actual, predicted []float64) bool {
	return len(actual) > 0 && len(actual) == len(predicted)
}
