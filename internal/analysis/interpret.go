package analysis

import "tabstat/domain/stats"

// Shape thresholds: |skewness| within SymmetryBand reads as symmetric and
// kurtosis within MesokurticBand of 3 reads as normal-tailed
const (
	SymmetryBand   = 0.5
	MesokurticBand = 0.5
	normalKurtosis = 3.0
)

// Interpret describes the skewness and kurtosis of a summary in words.
// Kurtosis here is raw (non-excess), so a normal sample is near 3.
func Interpret(s stats.Summary) stats.Interpretation {
	var out stats.Interpretation

	switch {
	case s.Count < 3:
		out.Skewness = "insufficient data"
	case s.Skewness > SymmetryBand:
		out.Skewness = "right-skewed (long right tail)"
	case s.Skewness < -SymmetryBand:
		out.Skewness = "left-skewed (long left tail)"
	default:
		out.Skewness = "approximately symmetric"
	}

	switch {
	case s.Count < 4 || s.StdDev == 0:
		out.Kurtosis = "insufficient data"
	case s.Kurtosis > normalKurtosis+MesokurticBand:
		out.Kurtosis = "leptokurtic (heavier tails than normal)"
	case s.Kurtosis < normalKurtosis-MesokurticBand:
		out.Kurtosis = "platykurtic (lighter tails than normal)"
	default:
		out.Kurtosis = "mesokurtic (close to normal)"
	}
	return out
}
