// SPDX-License-Identifier: MIT

package complexnum

import (
	"io"

	"github.com/katalvlaran/mathkit/internal/record"
)

// ReadComplex parses a two-column (real, imaginary) table. The header row is
// discarded and every following record must carry both fields as float32
// values. The first malformed field aborts with a *record.ParseError.
func ReadComplex(r io.Reader) ([]Complex, error) {
	rows, err := record.Table(r)
	if err != nil {
		return nil, err
	}

	out := make([]Complex, 0, len(rows))
	for _, row := range rows {
		if len(row.Fields) < 2 {
			return nil, &record.ParseError{Line: row.Line, Field: 1, Err: io.ErrUnexpectedEOF}
		}
		re, err := record.Float32(row.Fields[0], row.Line, 0)
		if err != nil {
			return nil, err
		}
		im, err := record.Float32(row.Fields[1], row.Line, 1)
		if err != nil {
			return nil, err
		}
		out = append(out, Complex{Real: re, Imag: im})
	}

	return out, nil
}
