// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/mathkit/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_TooFew(t *testing.T) {
	for _, vs := range [][]vector.Vector{nil, {vector.New(1, 2, 3)}} {
		_, err := vector.Reduce(vs)
		assert.ErrorIs(t, err, vector.ErrTooFewVectors)
	}
}

func TestReduce_TwoVectors(t *testing.T) {
	red, err := vector.Reduce([]vector.Vector{vector.New(2, 3, 4), vector.New(5, 6, 7)})
	require.NoError(t, err)

	assert.Equal(t, vector.New(7, 9, 11), red.Sum)
	assert.Equal(t, vector.New(-3, -3, -3), red.Difference)
	assert.Equal(t, red.Sum, red.Accumulated)
	assert.Equal(t, 166.0, red.DotTotal) // (7,9,11)·(5,6,7)
	assert.Equal(t, vector.New(-3, 6, -3), red.Cross)
}

// TestReduce_DotUsesUpdatedAccumulator pins the update order of DotTotal.
func TestReduce_DotUsesUpdatedAccumulator(t *testing.T) {
	vs := []vector.Vector{vector.New(1, 0, 0), vector.New(0, 1, 0), vector.New(0, 0, 1)}
	red, err := vector.Reduce(vs)
	require.NoError(t, err)

	assert.Equal(t, vector.New(1, 1, 1), red.Sum)
	assert.Equal(t, vector.New(1, -1, -1), red.Difference)
	assert.Equal(t, 2.0, red.DotTotal) // (1,1,0)·ŷ + (1,1,1)·ẑ
	assert.Equal(t, vector.New(0, 0, 0), red.Cross)
}

func TestDescribe(t *testing.T) {
	got := vector.Describe([]vector.Vector{vector.New(3, 4, 0), vector.New(0, 0, -2)}, -0.5)
	require.Len(t, got, 2)
	assert.Equal(t, 5.0, got[0].Magnitude)
	assert.Equal(t, vector.New(-1.5, -2, 0), got[0].Scaled)
	assert.Equal(t, 2.0, got[1].Magnitude)
	assert.Equal(t, vector.New(0, 0, 1), got[1].Scaled)

	assert.Empty(t, vector.Describe(nil, 1))
}
