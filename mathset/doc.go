// SPDX-License-Identifier: MIT

// Package mathset implements finite integer sets as ordered sequences of
// int32 values.
//
// What:
//
//   - Set keeps its elements in insertion order; duplicates are allowed at
//     construction time.
//   - Union appends to A every element of B not yet present in the output.
//   - Intersection keeps the elements of A that occur in B, in A's order.
//   - Difference keeps the elements of A absent from B, in A's order.
//   - ReadSets parses one comma-separated set per line.
//   - Reduce left-folds a sequence of sets through all three operations.
//
// Why ordered sequences instead of map-backed sets:
//
//   - Results must reproduce first-seen order and the duplicates carried by
//     the left operand, which a hash set cannot express.
//
// Complexity:
//
//   - Union, Intersection, Difference: O(|A| + |B|) time, O(|A| + |B|) memory.
//   - Reduce: O(Σ|Sᵢ|) per operation.
//
// Errors:
//
//   - ErrNoSets: Reduce was given an empty sequence.
//   - record.ErrMalformed: ReadSets met a token that is not an int32.
package mathset
