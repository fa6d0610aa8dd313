// SPDX-License-Identifier: MIT

// Package: matrix
//
// dense.go: construction and read-only accessors of Matrix.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Matrix method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// zeros allocates rows×cols zeros without validation (callers pass sane sizes).
func zeros(rows, cols int) Matrix {
	data := make([][]int32, rows)
	for i := range data {
		data[i] = make([]int32, cols)
	}

	return Matrix{data: data}
}

// New creates a rows×cols matrix initialized to zeros.
// Stage 1 (Validate): both dimensions must be ≥ 0.
// Stage 2 (Prepare): allocate one slice per row.
// New(0, 0) is the empty matrix; New(r, 0) has r empty rows.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return zeros(rows, cols), nil
}

// FromRows builds a Matrix holding a deep copy of rows. No shape checks are
// made, so jagged input is kept as is (like ReadMatrices).
// Complexity: O(r*c).
func FromRows(rows [][]int32) Matrix {
	data := make([][]int32, len(rows))
	for i, row := range rows {
		data[i] = append(make([]int32, 0, len(row)), row...)
	}

	return Matrix{data: data}
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m Matrix) Rows() int {
	return len(m.data)
}

// Cols returns the width of the first row, or 0 for an empty matrix.
// Complexity: O(1).
func (m Matrix) Cols() int {
	if len(m.data) == 0 {
		return 0
	}

	return len(m.data[0])
}

// IsEmpty reports whether m has no rows.
func (m Matrix) IsEmpty() bool { return len(m.data) == 0 }

// At retrieves the element at (row, col), checking against the actual
// length of that row.
// Complexity: O(1).
func (m Matrix) At(row, col int) (int32, error) {
	if row < 0 || row >= len(m.data) {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= len(m.data[row]) {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row][col], nil
}

// Data returns a deep copy of the rows.
// Complexity: O(r*c).
func (m Matrix) Data() [][]int32 {
	return FromRows(m.data).data
}

// Equal reports whether m and other hold the same rows with the same lengths.
// Complexity: O(r*c).
func (m Matrix) Equal(other Matrix) bool {
	if len(m.data) != len(other.data) {
		return false
	}
	for i := range m.data {
		if len(m.data[i]) != len(other.data[i]) {
			return false
		}
		for j := range m.data[i] {
			if m.data[i][j] != other.data[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders one "[a, b, c]" line per row.
// Complexity: O(r*c) for string construction.
func (m Matrix) String() string {
	var b strings.Builder
	for i, row := range m.data {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[') // open row
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ") // separate values with comma
			}
			b.WriteString(strconv.FormatInt(int64(v), 10))
		}
		b.WriteByte(']') // close row
	}

	return b.String()
}
