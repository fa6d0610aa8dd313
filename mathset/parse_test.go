// SPDX-License-Identifier: MIT

package mathset_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mathkit/internal/record"
	"github.com/katalvlaran/mathkit/mathset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSets(t *testing.T) {
	sets, err := mathset.ReadSets(strings.NewReader("1,2,3\n 3, 4 ,5\n-10\n"))
	require.NoError(t, err)
	require.Len(t, sets, 3)
	assert.Equal(t, []int32{1, 2, 3}, sets[0].Elements())
	assert.Equal(t, []int32{3, 4, 5}, sets[1].Elements())
	assert.Equal(t, []int32{-10}, sets[2].Elements())
}

func TestReadSets_Empty(t *testing.T) {
	sets, err := mathset.ReadSets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestReadSets_MalformedAborts(t *testing.T) {
	tests := map[string]struct {
		input string
		line  int
		token string
	}{
		"letters":      {input: "1,2\n3,a,4\n", line: 2, token: "a"},
		"float":        {input: "1.5\n", line: 1, token: "1.5"},
		"blank line":   {input: "1\n\n2\n", line: 2, token: ""},
		"int32 bounds": {input: "2147483648\n", line: 1, token: "2147483648"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sets, err := mathset.ReadSets(strings.NewReader(tc.input))
			require.ErrorIs(t, err, record.ErrMalformed)
			assert.Nil(t, sets, "no partial result on failure")

			var pe *record.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.token, pe.Token)
		})
	}
}
