// SPDX-License-Identifier: MIT

package record

import (
	"encoding/csv"
	stderrors "errors"
	"io"

	"github.com/pkg/errors"
)

// Row is one data record of a table together with the input line it
// started on.
type Row struct {
	Line   int
	Fields []string
}

// Table reads comma-separated records from r, discards the header row and
// returns the remaining rows. Every record must have as many fields as the
// header; a shape violation is reported as a *ParseError. Fields are
// returned verbatim: surrounding whitespace is not trimmed.
// Empty input yields no rows and no error.
// Complexity: O(n) time and memory in the input size.
func Table(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0 // the header fixes the width

	// Stage 1: consume the header.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, tableError(err)
	}

	// Stage 2: materialize every data record.
	var rows []Row
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, tableError(err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{Line: line, Fields: fields})
	}

	return rows, nil
}

// tableError converts csv shape errors into *ParseError and wraps anything
// else as an I/O failure.
func tableError(err error) error {
	var pe *csv.ParseError
	if stderrors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Field: -1, Err: pe.Err}
	}

	return errors.Wrap(err, "record: read table")
}
