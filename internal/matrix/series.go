package matrix

import "math"

// Diff returns the lag-k differences data[i] - data[i-periods]. The result
// has len(data)-periods elements; periods < 1 yields nil.
func Diff(data []float64, periods int) []float64 {
	if periods < 1 {
		logger.Debug("Diff: periods must be positive, got %d", periods)
		return nil
	}
	if len(data) <= periods {
		return []float64{}
	}
	out := make([]float64, 0, len(data)-periods)
	for i := periods; i < len(data); i++ {
		out = append(out, data[i]-data[i-periods])
	}
	return out
}

// PercentChange returns 100·(data[i]-data[i-periods])/data[i-periods].
// Steps whose base has magnitude at or below PivotTolerance are NaN.
func PercentChange(data []float64, periods int) []float64 {
	if periods < 1 {
		logger.Debug("PercentChange: periods must be positive, got %d", periods)
		return nil
	}
	if len(data) <= periods {
		return []float64{}
	}
	out := make([]float64, 0, len(data)-periods)
	for i := periods; i < len(data); i++ {
		base := data[i-periods]
		if math.Abs(base) > PivotTolerance {
			out = append(out, (data[i]-base)/base*100.0)
		} else {
			out = append(out, math.NaN())
		}
	}
	return out
}
