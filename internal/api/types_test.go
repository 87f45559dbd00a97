package api

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesNullIsNaN(t *testing.T) {
	var v Values
	require.NoError(t, json.Unmarshal([]byte(`[1.5,null,-2]`), &v))

	require.Len(t, v, 3)
	assert.Equal(t, 1.5, v[0])
	assert.True(t, math.IsNaN(v[1]))
	assert.Equal(t, -2.0, v[2])

	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &v))
}
