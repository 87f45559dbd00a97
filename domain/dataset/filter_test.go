package dataset

import (
	"errors"
	"testing"

	"tabstat/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		condition Condition
		value     string
		cell      string
		want      bool
	}{
		{CondEquals, "north", "north", true},
		{CondEquals, "north", "North", false},
		{CondNotEquals, "north", "south", true},
		{CondGreater, "10", "12", true},
		{CondGreater, "10", "10", false},
		{CondLess, "10", "9.5", true},
		{CondGreaterOrEqual, "10", "10", true},
		{CondLessOrEqual, "10", "10.01", false},
		{CondGreater, "10", "n/a", false},
		{CondLess, "10", "", false},
		{CondContains, "ort", "north", true},
		{CondNotContains, "ort", "south", true},
		{CondStartsWith, "no", "north", true},
		{CondEndsWith, "th", "south", true},
		{CondEndsWith, "th", "east", false},
		{CondEmpty, "", "", true},
		{CondEmpty, "", "x", false},
		{CondNotEmpty, "", "x", true},
	}

	for _, tt := range tests {
		f, err := NewFilter("region", tt.condition, tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, f.Match(tt.cell), "%s on %q", f, tt.cell)
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		expr string
		want Filter
	}{
		{"units>=10", Filter{Column: "units", Condition: CondGreaterOrEqual, Value: "10"}},
		{"units > 10", Filter{Column: "units", Condition: CondGreater, Value: "10"}},
		{"region = north", Filter{Column: "region", Condition: CondEquals, Value: "north"}},
		{"region==north", Filter{Column: "region", Condition: CondEquals, Value: "north"}},
		{"region!=north", Filter{Column: "region", Condition: CondNotEquals, Value: "north"}},
		{"unit price<=2.5", Filter{Column: "unit price", Condition: CondLessOrEqual, Value: "2.5"}},
		{"name starts_with Jo Ann", Filter{Column: "name", Condition: CondStartsWith, Value: "Jo Ann"}},
		{"note contains a=b", Filter{Column: "note", Condition: CondContains, Value: "a=b"}},
		{"region NOT_EMPTY", Filter{Column: "region", Condition: CondNotEmpty}},
		{"region empty", Filter{Column: "region", Condition: CondEmpty}},
		{"region=", Filter{Column: "region", Condition: CondEquals}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseFilter(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilterErrors(t *testing.T) {
	for _, expr := range []string{"", "region", "=north", "units > many", "region empty now"} {
		_, err := ParseFilter(expr)
		assert.True(t, errors.Is(err, core.ErrInvalidParameter), "%q: got %v", expr, err)
	}

	_, err := NewFilter("units", Condition("between"), "1")
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestTableFilter(t *testing.T) {
	table := sampleTable()

	f, err := ParseFilter("region = north")
	require.NoError(t, err)
	north, err := table.Filter(f)
	require.NoError(t, err)
	assert.Equal(t, 2, north.NumRows())
	assert.Equal(t, table.Headers, north.Headers)
	assert.Equal(t, 4, table.NumRows(), "source table is untouched")

	f, err = ParseFilter("units >= 10")
	require.NoError(t, err)
	large, err := table.Filter(f)
	require.NoError(t, err)
	units, err := large.ColumnAsFloats("units")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12}, units)

	_, err = table.Filter(Filter{Column: "missing", Condition: CondNotEmpty})
	assert.True(t, errors.Is(err, core.ErrColumnNotFound))
}
