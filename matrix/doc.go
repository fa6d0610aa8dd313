// Package matrix implements rectangular int32 matrices and their algebra.
//
// The matrix package provides:
//
//   - Matrix, an immutable sequence of int32 rows, built zero-filled by New,
//     copied from data by FromRows, or parsed by ReadMatrices.
//   - Element-wise Add and Sub, standard Mul, and Scale by an int32 factor.
//   - PairwiseReduce, which accumulates Add/Sub/Mul over every index pair
//     (i < j) of the first n matrices.
//
// Numeric policy: all arithmetic is native int32 with two's-complement
// wraparound; there is no saturation and no big-integer promotion.
//
// Shape policy: Add and Sub compare only the row counts and the widths of
// the FIRST rows. A jagged matrix can therefore pass validation; a shorter
// deeper row is reported as ErrRaggedRow and a longer one is truncated to
// the first row's width.
//
// See the examples in this package for usage patterns.
package matrix
