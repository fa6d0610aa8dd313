// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape checks used by the kernels.
//  - Return sentinels wrapped with a validator tag so call sites can wrap
//    uniformly with matrixErrorf.
//
// Shallow shape policy:
//  - Only row counts and FIRST-row widths are compared. Deeper rows are
//    checked lazily by the kernels (ErrRaggedRow) while they walk the data.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. rows → empty → width).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotEmpty ensures m has at least one row.
//
// Returns ErrEmptyMatrix if m has no rows.
// Complexity: O(1).
func ValidateNotEmpty(m Matrix) error {
	if m.IsEmpty() {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape is the shallow element-wise compatibility check used by
// Add and Sub.
//
// Sequence: row counts → both non-empty → first-row widths.
// Errors: ErrDimensionMismatch, ErrEmptyMatrix.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if err := ValidateNotEmpty(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotEmpty(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks that a×b is defined: both operands non-empty
// and a.Cols() == b.Rows().
//
// Errors: ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotEmpty(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotEmpty(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible: Inner", ErrDimensionMismatch)
	}

	return nil
}

// validateRowWidth reports ErrRaggedRow when row i is shorter than width.
func validateRowWidth(row []int32, i, width int) error {
	if len(row) < width {
		return fmt.Errorf("row %d has %d of %d columns: %w", i, len(row), width, ErrRaggedRow)
	}

	return nil
}
