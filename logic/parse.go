// SPDX-License-Identifier: MIT

package logic

import (
	"io"

	"github.com/katalvlaran/mathkit/internal/record"
)

// ReadInputs parses a single-column table of booleans. The header row is
// discarded; each remaining record contributes its first field, which must
// be exactly "true" or "false". Any other value, or a record whose field
// count differs from the header, aborts with a *record.ParseError.
func ReadInputs(r io.Reader) ([]bool, error) {
	rows, err := record.Table(r)
	if err != nil {
		return nil, err
	}

	out := make([]bool, 0, len(rows))
	for _, row := range rows {
		v, err := record.Bool(row.Fields[0], row.Line, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
