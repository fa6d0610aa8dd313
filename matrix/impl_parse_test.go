// SPDX-License-Identifier: MIT

package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mathkit/internal/record"
	"github.com/katalvlaran/mathkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMatrices(t *testing.T) {
	ms, err := matrix.ReadMatrices(strings.NewReader("1,2\n3,4\n\n5, 6\n7,8\n"))
	require.NoError(t, err)
	require.Len(t, ms, 2)
	requireMatrix(t, [][]int32{{1, 2}, {3, 4}}, ms[0])
	requireMatrix(t, [][]int32{{5, 6}, {7, 8}}, ms[1])
}

func TestReadMatrices_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][][]int32
	}{
		{name: "empty input", input: "", want: [][][]int32{{}}},
		{name: "leading blank", input: "\n1,2\n", want: [][][]int32{{}, {{1, 2}}}},
		{name: "trailing blank", input: "1,2\n\n", want: [][][]int32{{{1, 2}}, {}}},
		{name: "double blank", input: "1\n\n\n2\n", want: [][][]int32{{{1}}, {}, {{2}}}},
		{name: "whitespace line is blank", input: "1\n \t\n2", want: [][][]int32{{{1}}, {{2}}}},
		{name: "jagged rows load", input: "1,2\n3\n", want: [][][]int32{{{1, 2}, {3}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms, err := matrix.ReadMatrices(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Len(t, ms, len(tc.want))
			for i := range tc.want {
				requireMatrix(t, tc.want[i], ms[i])
			}
		})
	}
}

func TestReadMatrices_MalformedAborts(t *testing.T) {
	ms, err := matrix.ReadMatrices(strings.NewReader("1,2\n3,4\n\n5,x\n"))
	require.ErrorIs(t, err, record.ErrMalformed)
	assert.Nil(t, ms)

	var pe *record.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Line)
	assert.Equal(t, 1, pe.Field)
}
