// SPDX-License-Identifier: MIT

// Package logic evaluates boolean reductions over a fixed vector of inputs.
//
// A Gate is immutable once built. And, Or and Xor fold the inputs left to
// right; Nand, Nor and Xnor are their negations; Not negates each input.
package logic

import "fmt"

// MinInputs is the smallest number of inputs a Gate accepts.
const MinInputs = 2

// Gate holds an ordered, immutable sequence of boolean inputs.
type Gate struct {
	inputs []bool
}

// New validates inputs and returns a Gate over a private copy of them.
func New(inputs []bool) (Gate, error) {
	if len(inputs) < MinInputs {
		return Gate{}, fmt.Errorf("New: got %d: %w", len(inputs), ErrInsufficientInputs)
	}
	cp := make([]bool, len(inputs))
	copy(cp, inputs)

	return Gate{inputs: cp}, nil
}

// Inputs returns a copy of the gate's inputs.
func (g Gate) Inputs() []bool {
	cp := make([]bool, len(g.inputs))
	copy(cp, g.inputs)

	return cp
}

// Len returns the number of inputs.
func (g Gate) Len() int { return len(g.inputs) }

// And reports whether every input is true.
func (g Gate) And() bool {
	for _, in := range g.inputs {
		if !in {
			return false
		}
	}

	return true
}

// Or reports whether any input is true.
func (g Gate) Or() bool {
	for _, in := range g.inputs {
		if in {
			return true
		}
	}

	return false
}

// Not returns the per-input negation as a new slice of the same length.
func (g Gate) Not() []bool {
	out := make([]bool, len(g.inputs))
	for i, in := range g.inputs {
		out[i] = !in
	}

	return out
}

// Nand is ¬And.
func (g Gate) Nand() bool { return !g.And() }

// Nor is ¬Or.
func (g Gate) Nor() bool { return !g.Or() }

// Xor is the parity of the inputs: true iff an odd number of them are true.
func (g Gate) Xor() bool {
	acc := false
	for _, in := range g.inputs {
		acc = acc != in
	}

	return acc
}

// Xnor is ¬Xor.
func (g Gate) Xnor() bool { return !g.Xor() }
