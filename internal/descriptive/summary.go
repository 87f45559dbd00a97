package descriptive

import "tabstat/domain/stats"

// Summarize computes every statistic of the package into one record.
// An empty sample yields the zero Summary; any sub-statistic that fails
// (variance of one value, skewness below 3 values, kurtosis of flat data)
// is recorded as 0.
func Summarize(data []float64) stats.Summary {
	valid := ValidData(data)
	if len(valid) == 0 {
		return stats.Summary{}
	}

	s := stats.Summary{
		Count:    len(valid),
		Sum:      Sum(valid).ValueOr(0),
		Mean:     Mean(valid).ValueOr(0),
		Median:   Median(valid).ValueOr(0),
		Mode:     Mode(valid).ValueOr(0),
		Variance: Variance(valid, true).ValueOr(0),
		StdDev:   StandardDeviation(valid, true).ValueOr(0),
		Min:      Min(valid).ValueOr(0),
		Max:      Max(valid).ValueOr(0),
		Q1:       Q1(valid).ValueOr(0),
		Q3:       Q3(valid).ValueOr(0),
		Skewness: Skewness(valid).ValueOr(0),
		Kurtosis: Kurtosis(valid).ValueOr(0),
	}
	s.Range = s.Max - s.Min
	s.IQR = s.Q3 - s.Q1
	return s
}
