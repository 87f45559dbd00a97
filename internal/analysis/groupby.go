package analysis

import (
	"context"
	"fmt"
	"strings"

	"tabstat/domain/core"
	"tabstat/domain/dataset"
	"tabstat/domain/stats"
	"tabstat/internal/descriptive"
)

// Aggregation names a group-by reducer
type Aggregation string

const (
	AggCount  Aggregation = "count"
	AggSum    Aggregation = "sum"
	AggMean   Aggregation = "mean"
	AggMin    Aggregation = "min"
	AggMax    Aggregation = "max"
	AggStdDev Aggregation = "stddev"
)

// ParseAggregation accepts the aggregation names case-insensitively
func ParseAggregation(s string) (Aggregation, error) {
	agg := Aggregation(strings.ToLower(strings.TrimSpace(s)))
	switch agg {
	case AggCount, AggSum, AggMean, AggMin, AggMax, AggStdDev:
		return agg, nil
	case "avg", "average":
		return AggMean, nil
	case "std":
		return AggStdDev, nil
	}
	return "", core.NewParameterError("aggregation", fmt.Sprintf("%q is not one of count, sum, mean, min, max, stddev", s))
}

func (agg Aggregation) apply(values []float64) stats.Result {
	switch agg {
	case AggCount:
		return stats.OK(float64(descriptive.Count(values)))
	case AggSum:
		return descriptive.Sum(values)
	case AggMean:
		return descriptive.Mean(values)
	case AggMin:
		return descriptive.Min(values)
	case AggMax:
		return descriptive.Max(values)
	case AggStdDev:
		return descriptive.StandardDeviation(values, true)
	}
	return stats.Failf(core.ErrInvalidParameter, "unknown aggregation %q", string(agg))
}

// GroupBy groups rows by the text of keyColumn and reduces valueColumn in
// each group. Groups appear in order of first appearance. Count is the
// number of rows in the group; the count aggregation counts numeric cells.
func (a *Analyzer) GroupBy(ctx context.Context, table *dataset.Table, keyColumn, valueColumn string, agg Aggregation) ([]stats.GroupResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys, err := table.Column(keyColumn)
	if err != nil {
		return nil, err
	}
	values, err := table.ColumnAsFloats(valueColumn)
	if err != nil {
		return nil, err
	}
	agg, err = ParseAggregation(string(agg))
	if err != nil {
		return nil, err
	}

	var order []string
	members := make(map[string][]float64)
	for i, key := range keys {
		if _, seen := members[key]; !seen {
			order = append(order, key)
		}
		members[key] = append(members[key], values[i])
	}

	results := make([]stats.GroupResult, 0, len(order))
	for _, key := range order {
		group := members[key]
		r := agg.apply(group)
		result := stats.GroupResult{Key: key, Count: len(group), Valid: r.IsValid, ErrorMessage: r.ErrorMessage}
		if r.IsValid {
			result.Value = r.Value
		}
		results = append(results, result)
	}

	a.logger.Debug("GroupBy %s(%s) by %s: %d groups", agg, valueColumn, keyColumn, len(results))
	return results, nil
}
