// SPDX-License-Identifier: MIT

// Package vector provides three-component float64 vectors and the running
// reductions computed over a batch of them.
//
// All operations are total: NaN and ±Inf propagate through IEEE-754
// arithmetic and are never reported as errors. The only failure of the
// package is a reduction over fewer than two vectors (ErrTooFewVectors) or a
// malformed token in a well-shaped input line (record.ErrMalformed).
//
// ReadVectors is lenient about shape: a line that does not carry exactly
// three comma-separated tokens is dropped, blank lines included. It stays
// strict about content: a 3-token line with a bad number aborts the read.
package vector
