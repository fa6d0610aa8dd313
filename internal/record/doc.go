// SPDX-License-Identifier: MIT

// Package record holds the shared batch-ingestion conventions used by the
// math object parsers.
//
// What:
//
//   - Lines materializes a whole reader into memory before any parsing.
//   - Fields splits a delimited line into trimmed tokens.
//   - Int32, Float64, Float32 and Bool parse a single token and report a
//     *ParseError that carries the line and field position.
//   - Table reads tabular (CSV) input and drops the header row.
//
// Errors:
//
//   - ErrMalformed: a token could not be parsed. Every *ParseError matches it
//     via errors.Is.
//   - I/O failures are wrapped with their context and keep their cause.
//
// Policy: fail fast. The first malformed token aborts the whole ingestion
// call and no partial sequence is returned.
package record
