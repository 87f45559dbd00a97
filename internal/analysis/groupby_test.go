package analysis

import (
	"context"
	"testing"

	"tabstat/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy(t *testing.T) {
	a := newTestAnalyzer(1)
	ctx := context.Background()

	groups, err := a.GroupBy(ctx, salesTable(), "region", "units", AggSum)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "north", groups[0].Key)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, 4.0, groups[0].Value)
	assert.Equal(t, "south", groups[1].Key)
	assert.Equal(t, 7.0, groups[1].Value)
	assert.Equal(t, "east", groups[2].Key)
}

func TestGroupByAggregations(t *testing.T) {
	a := newTestAnalyzer(1)
	ctx := context.Background()

	tests := []struct {
		agg  Aggregation
		want []float64
	}{
		{AggCount, []float64{1, 1, 1}},
		{AggMean, []float64{2.5, 3, 4}},
		{AggMin, []float64{2.5, 3, 4}},
		{AggMax, []float64{2.5, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.agg), func(t *testing.T) {
			groups, err := a.GroupBy(ctx, salesTable(), "region", "price", tt.agg)
			require.NoError(t, err)
			require.Len(t, groups, 3)
			for i, g := range groups {
				assert.True(t, g.Valid, g.ErrorMessage)
				assert.InDelta(t, tt.want[i], g.Value, 1e-12)
			}
		})
	}
}

func TestGroupByInvalidGroups(t *testing.T) {
	groups, err := newTestAnalyzer(1).GroupBy(context.Background(), salesTable(), "region", "units", AggStdDev)
	require.NoError(t, err)

	assert.True(t, groups[0].Valid)
	assert.InDelta(t, 1.4142135623730951, groups[0].Value, 1e-12)
	assert.False(t, groups[2].Valid, "a single value has no sample deviation")
	assert.Contains(t, groups[2].ErrorMessage, "at least 2 values")
	assert.Equal(t, 0.0, groups[2].Value)
}

func TestGroupByErrors(t *testing.T) {
	a := newTestAnalyzer(1)
	ctx := context.Background()

	_, err := a.GroupBy(ctx, salesTable(), "nope", "units", AggSum)
	assert.ErrorIs(t, err, core.ErrColumnNotFound)

	_, err = a.GroupBy(ctx, salesTable(), "region", "units", Aggregation("median"))
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestParseAggregation(t *testing.T) {
	for input, want := range map[string]Aggregation{
		"SUM":     AggSum,
		" mean ":  AggMean,
		"average": AggMean,
		"std":     AggStdDev,
	} {
		got, err := ParseAggregation(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}
	_, err := ParseAggregation("mode")
	assert.Error(t, err)
}
