// SPDX-License-Identifier: MIT

// Package: matrix
//
// types.go: the Matrix value type and the operation tags used by the
// kernels and by PairwiseReduce. Nothing else lives here.

package matrix

// Matrix is a sequence of int32 rows.
// Rows are expected to share the first row's width; the shallow validators
// do not enforce that beyond the first row (see package docs).
// The zero value is the empty 0×0 matrix. A Matrix never shares its backing
// rows with callers.
//
// Complexity notes: Rows/Cols are O(1); Data/FromRows copy in O(r*c).
type Matrix struct {
	data [][]int32 // row-major; data[i] is row i
}

// Op identifies a binary matrix operation.
type Op int

const (
	// OpAdd is element-wise addition.
	OpAdd Op = iota
	// OpSub is element-wise subtraction.
	OpSub
	// OpMul is matrix multiplication.
	OpMul
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opAccumulate = "Accumulate"
)

// String returns the operation tag ("Add", "Sub", "Mul").
func (o Op) String() string {
	switch o {
	case OpAdd:
		return opAdd
	case OpSub:
		return opSub
	case OpMul:
		return opMul
	default:
		return "Op(?)"
	}
}
