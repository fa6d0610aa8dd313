// SPDX-License-Identifier: MIT

package complexnum_test

import (
	"testing"

	"github.com/katalvlaran/mathkit/complexnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_Empty(t *testing.T) {
	_, err := complexnum.Reduce(nil)
	assert.ErrorIs(t, err, complexnum.ErrNoNumbers)
}

func TestReduce_Single(t *testing.T) {
	c := complexnum.New(1.5, -2)
	red, err := complexnum.Reduce([]complexnum.Complex{c})
	require.NoError(t, err)
	assert.Equal(t, complexnum.Reduction{Sum: c, Difference: c, Product: c, Quotient: c}, red)
}

func TestReduce_Folds(t *testing.T) {
	cs := []complexnum.Complex{complexnum.New(1, 2), complexnum.New(3, 4), complexnum.New(5, 6)}
	red, err := complexnum.Reduce(cs)
	require.NoError(t, err)

	assert.Equal(t, complexnum.New(9, 12), red.Sum)
	assert.Equal(t, complexnum.New(-7, -8), red.Difference)
	assert.Equal(t, complexnum.New(-85, 20), red.Product)
	assert.InDelta(t, 2.68/61, red.Quotient.Real, 1e-6)
	assert.InDelta(t, -2.24/61, red.Quotient.Imag, 1e-6)
}

func TestReduce_ZeroDivisorAborts(t *testing.T) {
	cs := []complexnum.Complex{complexnum.New(1, 2), complexnum.New(3, 4), {}, complexnum.New(5, 6)}
	red, err := complexnum.Reduce(cs)
	require.ErrorIs(t, err, complexnum.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "divisor 2")
	assert.Equal(t, complexnum.Reduction{}, red)
}
