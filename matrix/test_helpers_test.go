// SPDX-License-Identifier: MIT
// Package: matrix_test
//
// test_helpers_test.go: shared fixtures.
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels and reducers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mathkit/matrix"
	"github.com/stretchr/testify/require"
)

// rowsOf builds a Matrix from literal rows (jagged input allowed).
func rowsOf(rows ...[]int32) matrix.Matrix {
	return matrix.FromRows(rows)
}

// MustNew allocates a zero r×c matrix or fails the test.
func MustNew(t *testing.T, r, c int) matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) int32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireMatrix asserts that got holds exactly want.
func requireMatrix(t *testing.T, want [][]int32, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want, got.Data())
}
