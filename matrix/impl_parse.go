// SPDX-License-Identifier: MIT

package matrix

import (
	"io"

	"github.com/katalvlaran/mathkit/internal/record"
)

// ReadMatrices parses a sequence of matrices from r.
//
// Format:
//   - each non-blank line is one row of comma-separated int32 values;
//   - a blank (whitespace-only) line terminates the current matrix;
//   - end of input terminates the last matrix, trailing blank line or not.
//
// Boundary behavior (kept on purpose):
//   - a blank line before any row emits a 0×0 matrix, and so does each
//     extra blank line or a trailing blank line;
//   - empty input yields a single 0×0 matrix;
//   - rows are not checked against each other, so jagged matrices load.
//
// Errors:
//   - the first malformed token aborts with a *record.ParseError; no partial
//     sequence is returned.
//
// Complexity: O(n) in the input size.
func ReadMatrices(r io.Reader) ([]Matrix, error) {
	lines, err := record.Lines(r)
	if err != nil {
		return nil, err
	}

	var (
		out []Matrix
		cur = Matrix{data: [][]int32{}}
	)
	for i, line := range lines {
		if record.IsBlank(line) {
			out = append(out, cur)
			cur = Matrix{data: [][]int32{}}
			continue
		}
		row, err := record.Int32s(line, i+1)
		if err != nil {
			return nil, err
		}
		cur.data = append(cur.data, row)
	}
	out = append(out, cur) // last matrix, even without a trailing blank line

	return out, nil
}
