// SPDX-License-Identifier: MIT

package mathset

// Reduction holds the N-way results of folding a sequence of sets.
type Reduction struct {
	Union        Set
	Intersection Set
	Difference   Set
}

// Reduce left-folds sets through Union, Intersection and Difference.
// Each fold starts from sets[0] and combines sets[1], sets[2], ... strictly
// in index order, so the duplicate layout of the result is reproducible.
// A single set reduces to itself under all three operations.
// Complexity: O(Σ|Sᵢ|) time per operation.
func Reduce(sets []Set) (Reduction, error) {
	if len(sets) == 0 {
		return Reduction{}, ErrNoSets
	}

	union, inter, diff := sets[0], sets[0], sets[0]
	for _, s := range sets[1:] {
		union = Union(union, s)
		inter = Intersection(inter, s)
		diff = Difference(diff, s)
	}

	return Reduction{Union: union, Intersection: inter, Difference: diff}, nil
}
