// Package descriptive computes single-column statistics over a sample.
//
// Every entry point first drops NaN and ±Inf ("valid data"). A sample with no
// valid values yields a failed stats.Result for every statistic except Count,
// which returns 0. Inputs are never modified.
//
// Failure policy differs per statistic and is part of the contract:
//
//	Variance(sample=true)   fails below 2 values; sample=false fails only when empty
//	Skewness                fails below 3 values; returns 0 when the std dev is 0
//	Kurtosis                fails below 4 values; fails when the std dev is 0
//	CoefficientOfVariation  fails when the mean is exactly 0
//	Summarize               never fails; failed sub-statistics become 0
package descriptive
