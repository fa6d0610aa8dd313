// SPDX-License-Identifier: MIT

package record

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a token (or a tabular record) that could not be parsed.
var ErrMalformed = errors.New("record: malformed token")

// ParseError reports the position of the first malformed token of an
// ingestion call. Line is 1-based; Field is 0-based, or -1 when the failure
// concerns the record shape rather than a single token.
type ParseError struct {
	Line  int
	Field int
	Token string
	Err   error // cause reported by strconv or encoding/csv
}

// Error renders "record: line L field F: malformed token "T": cause".
func (e *ParseError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("record: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("record: line %d field %d: malformed token %q: %v", e.Line, e.Field, e.Token, e.Err)
}

// Unwrap exposes the underlying strconv/csv error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports true for ErrMalformed so callers need not know the concrete type.
func (e *ParseError) Is(target error) bool { return target == ErrMalformed }
