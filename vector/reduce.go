// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Reduction holds the running results of folding a batch of vectors.
type Reduction struct {
	Sum        Vector // v0 + v1 + ... + vn
	Difference Vector // v0 − v1 − ... − vn

	// Accumulated is the running "multiplication" of the batch. It is
	// repeated addition and therefore always equals Sum; it is kept as a
	// separate result because DotTotal is defined in terms of it.
	Accumulated Vector

	// DotTotal is Σ Dot(Accumulated after step i, vi) for i ≥ 1.
	DotTotal float64

	Cross Vector // ((v0 × v1) × v2) × ...
}

// Reduce folds vs left to right starting from vs[0].
//
// At each step i ≥ 1 the accumulators are updated in this order: Sum,
// Difference, Accumulated, then DotTotal += Dot(Accumulated, vs[i]) using the
// freshly updated Accumulated, then Cross.
// Complexity: O(len(vs)).
func Reduce(vs []Vector) (Reduction, error) {
	if len(vs) < 2 {
		return Reduction{}, fmt.Errorf("Reduce: got %d: %w", len(vs), ErrTooFewVectors)
	}

	red := Reduction{Sum: vs[0], Difference: vs[0], Accumulated: vs[0], Cross: vs[0]}
	for _, v := range vs[1:] {
		red.Sum = Add(red.Sum, v)
		red.Difference = Sub(red.Difference, v)
		red.Accumulated = Add(red.Accumulated, v)
		red.DotTotal += Dot(red.Accumulated, v)
		red.Cross = Cross(red.Cross, v)
	}

	return red, nil
}

// Summary describes a single vector of a batch.
type Summary struct {
	Magnitude float64
	Scaled    Vector
}

// Describe returns, for each vector of vs in order, its magnitude and its
// multiple by s.
func Describe(vs []Vector, s float64) []Summary {
	out := make([]Summary, len(vs))
	for i, v := range vs {
		out[i] = Summary{Magnitude: Magnitude(v), Scaled: Scale(v, s)}
	}

	return out
}
