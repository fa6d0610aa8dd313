// SPDX-License-Identifier: MIT

package mathset

import (
	"strconv"
	"strings"
)

// Set is an immutable, ordered sequence of int32 elements.
// The zero value is the empty set.
type Set struct {
	elems []int32 // insertion order; never shared with callers
}

// New builds a Set holding a copy of elems, in the given order.
// Duplicates are kept as supplied.
// Complexity: O(n).
func New(elems ...int32) Set {
	cp := make([]int32, len(elems))
	copy(cp, elems)

	return Set{elems: cp}
}

// Elements returns a copy of the set's elements in order.
func (s Set) Elements() []int32 {
	out := make([]int32, len(s.elems))
	copy(out, s.elems)

	return out
}

// Len returns the number of stored elements, duplicates included.
func (s Set) Len() int { return len(s.elems) }

// Contains reports whether v occurs at least once in s.
// Complexity: O(n).
func (s Set) Contains(v int32) bool {
	for _, e := range s.elems {
		if e == v {
			return true
		}
	}

	return false
}

// String renders the set as "[1, 2, 3]".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(e), 10))
	}
	b.WriteByte(']')

	return b.String()
}

// Union is shorthand for Union(s, other).
func (s Set) Union(other Set) Set { return Union(s, other) }

// Intersection is shorthand for Intersection(s, other).
func (s Set) Intersection(other Set) Set { return Intersection(s, other) }

// Difference is shorthand for Difference(s, other).
func (s Set) Difference(other Set) Set { return Difference(s, other) }
