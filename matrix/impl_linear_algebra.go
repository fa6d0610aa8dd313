// SPDX-License-Identifier: MIT
// Package: matrix
//
// Algebra on Matrix values: element-wise addition and subtraction, matrix
// multiplication and scalar scaling.
//
// Purpose:
//   - Declare the canonical kernels used by callers and by PairwiseReduce.
//   - Wrap every failure with an operation tag so errors read "Add: matrix: ...".
//
// Notes:
//   - Inputs are never mutated; every result is freshly allocated.
//   - int32 arithmetic wraps on overflow (Go semantics), by contract.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b) (row counts, non-empty, first-row widths).
//   - Stage 2: ewAddSub walks rows i→j over the first row's width.
//
// Errors:
//   - ErrDimensionMismatch, ErrEmptyMatrix (validation).
//   - ErrRaggedRow (a deeper row is shorter than the first one).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return ewAddSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Same validation, errors and complexity as Add.
func Sub(a, b Matrix) (Matrix, error) { return ewAddSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b): both non-empty, A.Cols == B.Rows.
//   - Stage 2: check the n rows of B for width ≥ B.Cols, then run i→k→j,
//     skipping zero A[i,k] terms.
//
// Behavior highlights:
//   - Result shape is A.Rows × B.Cols.
//   - Accumulation is int32 with wraparound.
//
// Errors:
//   - ErrEmptyMatrix, ErrDimensionMismatch, ErrRaggedRow.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return Matrix{}, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	for k := 0; k < inner; k++ {
		if err := validateRowWidth(b.data[k], k, bCols); err != nil {
			return Matrix{}, matrixErrorf(opMul, fmt.Errorf("rhs %w", err))
		}
	}

	res := zeros(aRows, bCols)
	var (
		i, j, k int   // loop iterators
		av      int32 // A[i,k]
	)
	for i = 0; i < aRows; i++ {
		rowA := a.data[i]
		if err := validateRowWidth(rowA, i, inner); err != nil {
			return Matrix{}, matrixErrorf(opMul, fmt.Errorf("lhs %w", err))
		}
		rowR := res.data[i]
		for k = 0; k < inner; k++ {
			av = rowA[k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB := b.data[k]
			for j = 0; j < bCols; j++ {
				rowR[j] += av * rowB[j]
			}
		}
	}

	return res, nil
}

// Scale returns k·M. Each row keeps its own length, so Scale is total:
// an empty matrix scales to an empty matrix and jagged input stays jagged.
// Complexity: O(r*c).
func Scale(m Matrix, k int32) Matrix {
	return ewScale(m, k)
}
