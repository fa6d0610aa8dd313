// SPDX-License-Identifier: MIT

package mathset

import (
	"io"

	"github.com/katalvlaran/mathkit/internal/record"
)

// ReadSets parses one set per line of r. Each line is split on commas and
// every token must be a signed 32-bit integer; the first malformed token
// (a blank line included) aborts the call with a *record.ParseError.
// No partial sequence is ever returned.
func ReadSets(r io.Reader) ([]Set, error) {
	lines, err := record.Lines(r)
	if err != nil {
		return nil, err
	}

	sets := make([]Set, 0, len(lines))
	for i, line := range lines {
		elems, err := record.Int32s(line, i+1)
		if err != nil {
			return nil, err
		}
		sets = append(sets, Set{elems: elems})
	}

	return sets, nil
}
