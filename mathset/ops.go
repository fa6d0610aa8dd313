// SPDX-License-Identifier: MIT

package mathset

// membership indexes the distinct values of elems.
func membership(elems []int32) map[int32]struct{} {
	idx := make(map[int32]struct{}, len(elems))
	for _, e := range elems {
		idx[e] = struct{}{}
	}

	return idx
}

// Union returns every element of a (duplicates included), followed by each
// element of b that is not already present in the output.
// Stage 1: copy a verbatim and index its values.
// Stage 2: append unseen elements of b, indexing them as they go in.
// Complexity: O(|a| + |b|) time and memory.
func Union(a, b Set) Set {
	out := make([]int32, len(a.elems), len(a.elems)+len(b.elems))
	copy(out, a.elems)

	seen := membership(a.elems)
	for _, e := range b.elems {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return Set{elems: out}
}

// Intersection returns the elements of a that occur anywhere in b, in a's
// order. An element repeated in a is kept every time a has it.
// Complexity: O(|a| + |b|) time and memory.
func Intersection(a, b Set) Set {
	inB := membership(b.elems)
	out := make([]int32, 0, len(a.elems))
	for _, e := range a.elems {
		if _, ok := inB[e]; ok {
			out = append(out, e)
		}
	}

	return Set{elems: out}
}

// Difference returns the elements of a that do not occur in b, in a's order.
// Complexity: O(|a| + |b|) time and memory.
func Difference(a, b Set) Set {
	inB := membership(b.elems)
	out := make([]int32, 0, len(a.elems))
	for _, e := range a.elems {
		if _, ok := inB[e]; !ok {
			out = append(out, e)
		}
	}

	return Set{elems: out}
}
