// SPDX-License-Identifier: MIT

package logic_test

import (
	"testing"

	"github.com/katalvlaran/mathkit/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InsufficientInputs(t *testing.T) {
	for _, in := range [][]bool{nil, {}, {true}} {
		_, err := logic.New(in)
		assert.ErrorIs(t, err, logic.ErrInsufficientInputs, "%v", in)
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	in := []bool{true, false}
	g, err := logic.New(in)
	require.NoError(t, err)

	in[0] = false
	assert.Equal(t, []bool{true, false}, g.Inputs())

	got := g.Inputs()
	got[1] = true
	assert.Equal(t, []bool{true, false}, g.Inputs())
	assert.Equal(t, 2, g.Len())
}

func TestGate_Scenario(t *testing.T) {
	g, err := logic.New([]bool{true, false, true, true, false})
	require.NoError(t, err)

	assert.False(t, g.And())
	assert.True(t, g.Or())
	assert.True(t, g.Nand())
	assert.False(t, g.Nor())
	assert.True(t, g.Xor())
	assert.False(t, g.Xnor())
	assert.Equal(t, []bool{false, true, false, false, true}, g.Not())
}

func TestGate_Reductions(t *testing.T) {
	tests := []struct {
		name         string
		in           []bool
		and, or, xor bool
	}{
		{name: "all false", in: []bool{false, false}, and: false, or: false, xor: false},
		{name: "all true even", in: []bool{true, true}, and: true, or: true, xor: false},
		{name: "all true odd", in: []bool{true, true, true}, and: true, or: true, xor: true},
		{name: "single true", in: []bool{false, true, false}, and: false, or: true, xor: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := logic.New(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.and, g.And())
			assert.Equal(t, tc.or, g.Or())
			assert.Equal(t, tc.xor, g.Xor())
			assert.Equal(t, !tc.and, g.Nand())
			assert.Equal(t, !tc.or, g.Nor())
			assert.Equal(t, g.Xor(), !g.Xnor())
		})
	}
}

func TestEvaluate_MatchesTable(t *testing.T) {
	g, err := logic.New([]bool{true, false, true})
	require.NoError(t, err)

	tt := g.Table()
	want := map[logic.Op]bool{
		logic.OpAnd: tt.And, logic.OpOr: tt.Or, logic.OpNand: tt.Nand,
		logic.OpNor: tt.Nor, logic.OpXor: tt.Xor, logic.OpXnor: tt.Xnor,
	}
	for _, op := range logic.Ops {
		assert.Equal(t, want[op], g.Evaluate(op), op.String())
	}
	assert.Equal(t, g.Not(), tt.Not)
	assert.False(t, g.Evaluate(logic.Op(99)))
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "AND", logic.OpAnd.String())
	assert.Equal(t, "XNOR", logic.OpXnor.String())
	assert.Equal(t, "Op(-1)", logic.Op(-1).String())
}
