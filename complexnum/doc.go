// SPDX-License-Identifier: MIT

// Package complexnum implements single-precision complex arithmetic and a
// sequential reduction over a batch of complex numbers.
//
// Complex is a pair of float32 values rather than Go's built-in complex64 so
// that division can report a zero divisor as ErrDivisionByZero instead of
// yielding NaN or Inf components.
//
// Errors:
//
//   - ErrDivisionByZero: Div (and therefore Reduce) met the divisor 0 + 0i.
//   - ErrNoNumbers: Reduce was given an empty batch.
//   - record.ErrMalformed: ReadComplex met a non-numeric field.
package complexnum
