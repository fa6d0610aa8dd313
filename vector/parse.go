// SPDX-License-Identifier: MIT

package vector

import (
	"io"

	"github.com/katalvlaran/mathkit/internal/record"
)

// arity is the number of tokens a vector line must carry.
const arity = 3

// ReadVectors parses one vector per line of r.
// Lines whose token count differs from three are skipped; see ReadVectorsWithSkips.
func ReadVectors(r io.Reader) ([]Vector, error) {
	vs, _, err := ReadVectorsWithSkips(r)

	return vs, err
}

// ReadVectorsWithSkips behaves like ReadVectors and additionally returns the
// 1-based numbers of the lines it dropped for having the wrong token count.
//
// Every token of a 3-token line must parse as a float64; the first failure
// aborts with a *record.ParseError and no partial result.
// Complexity: O(n) in the input size.
func ReadVectorsWithSkips(r io.Reader) ([]Vector, []int, error) {
	lines, err := record.Lines(r)
	if err != nil {
		return nil, nil, err
	}

	var (
		out     = make([]Vector, 0, len(lines))
		skipped []int
		comps   [arity]float64
	)
	for i, line := range lines {
		toks := record.Fields(line)
		if len(toks) != arity {
			skipped = append(skipped, i+1)
			continue
		}
		for j, tok := range toks {
			v, err := record.Float64(tok, i+1, j)
			if err != nil {
				return nil, nil, err
			}
			comps[j] = v
		}
		out = append(out, Vector{X: comps[0], Y: comps[1], Z: comps[2]})
	}

	return out, skipped, nil
}
