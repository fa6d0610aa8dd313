// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go: the package-level sentinel errors. Operations return these
// sentinels wrapped with an operation tag; tests check them via errors.Is.
// No operation panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// the sentinels with matrixErrorf(opTag, err); callers still match them with
// errors.Is.
//
// ERROR PRIORITY (enforced in validators):
// row-count mismatch -> empty operand -> first-row width mismatch -> ragged row.

var (
	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Add/Sub with different row counts or first-row widths, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyMatrix signals that an arithmetic operand has no rows.
	ErrEmptyMatrix = errors.New("matrix: empty operand")

	// ErrRaggedRow signals a row shorter than the width taken from the first
	// row. Shape validation only inspects the first row, so this surfaces
	// while the kernel walks the data.
	ErrRaggedRow = errors.New("matrix: row shorter than first row")

	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrTooFewMatrices is returned by PairwiseReduce when fewer than two
	// matrices are available.
	ErrTooFewMatrices = errors.New("matrix: at least two matrices are required")

	// ErrBadCount is returned by PairwiseReduce when the requested count is
	// not within 1..len(matrices).
	ErrBadCount = errors.New("matrix: invalid matrix count")
)
