// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - PairwiseReduce: quadratic pairwise accumulation over the first n matrices.
//
// Determinism:
//   - Pairs are enumerated i ascending, then j ascending (i < j < n); every
//     accumulator therefore sees its contributions in a fixed order.

package matrix

import "fmt"

// Skip records one pairwise contribution that PairwiseReduce left out,
// either because the pair's shapes forbid Op or because the result could
// not be added into the running total.
type Skip struct {
	I, J int   // 0-based pair indices
	Op   Op    // operation that failed for this pair
	Err  error // cause, always matching a package sentinel via errors.Is
}

// String renders "Mul(0,2): Mul: matrix: dimension mismatch".
func (s Skip) String() string {
	return fmt.Sprintf("%s(%d,%d): %v", s.Op, s.I, s.J, s.Err)
}

// ScaledEntry is the scalar multiple of the left matrix of the pair (I, J).
type ScaledEntry struct {
	I, J   int
	Matrix Matrix
}

// Reduction holds the accumulated results of PairwiseReduce.
type Reduction struct {
	Sum        Matrix // Σ (Mᵢ + Mⱼ)
	Difference Matrix // Σ (Mᵢ − Mⱼ)
	Product    Matrix // Σ (Mᵢ × Mⱼ)
	Scaled     []ScaledEntry
	Skipped    []Skip
}

// PairwiseReduce accumulates Add, Sub and Mul over every index pair (i, j)
// with i < j < n.
//
// Implementation:
//   - Stage 1 (Validate): len(ms) ≥ 2, then 1 ≤ n ≤ len(ms).
//   - Stage 2 (Prepare): three zero accumulators shaped like ms[0]
//     (rows × first-row width).
//   - Stage 3 (Execute): for each pair, compute each op; a failing op is
//     skipped silently for that pair (recorded in Skipped); a successful
//     result is added into its accumulator, and if that addition fails the
//     contribution is skipped too. Scale(ms[i], k) is recorded per pair.
//
// Behavior highlights:
//   - n == 1 yields zero accumulators and no pairs.
//   - Shape errors never abort the reduction; only bad arguments do.
//
// Errors:
//   - ErrTooFewMatrices, ErrBadCount.
//
// Complexity:
//   - O(n²) pairs; each pair costs O(r*c) for Add/Sub and O(r*k*c) for Mul.
func PairwiseReduce(ms []Matrix, n int, k int32) (Reduction, error) {
	if len(ms) < 2 {
		return Reduction{}, fmt.Errorf("PairwiseReduce: got %d: %w", len(ms), ErrTooFewMatrices)
	}
	if n <= 0 || n > len(ms) {
		return Reduction{}, fmt.Errorf("PairwiseReduce: n=%d of %d: %w", n, len(ms), ErrBadCount)
	}

	rows, cols := ms[0].Rows(), ms[0].Cols()
	acc := [3]Matrix{zeros(rows, cols), zeros(rows, cols), zeros(rows, cols)}
	kernels := [3]func(a, b Matrix) (Matrix, error){Add, Sub, Mul}

	var red Reduction
	for i := 0; i < n; i++ {
		left := ms[i]
		for j := i + 1; j < n; j++ {
			right := ms[j]
			for op, kernel := range kernels {
				part, err := kernel(left, right)
				if err != nil {
					red.Skipped = append(red.Skipped, Skip{I: i, J: j, Op: Op(op), Err: err})
					continue
				}
				next, err := Add(acc[op], part)
				if err != nil {
					red.Skipped = append(red.Skipped, Skip{I: i, J: j, Op: Op(op), Err: matrixErrorf(opAccumulate, err)})
					continue
				}
				acc[op] = next
			}
			red.Scaled = append(red.Scaled, ScaledEntry{I: i, J: j, Matrix: Scale(left, k)})
		}
	}

	red.Sum, red.Difference, red.Product = acc[OpAdd], acc[OpSub], acc[OpMul]

	return red, nil
}
