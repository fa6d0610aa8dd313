// SPDX-License-Identifier: MIT

package logic

import "fmt"

// Op names one scalar-valued reduction of a Gate.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpNand
	OpNor
	OpXor
	OpXnor
)

// Ops lists every scalar reduction in display order.
var Ops = []Op{OpAnd, OpOr, OpNand, OpNor, OpXor, OpXnor}

var opNames = [...]string{"AND", "OR", "NAND", "NOR", "XOR", "XNOR"}

// String returns the upper-case gate name ("AND", "XNOR", ...).
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// Evaluate dispatches op on g. An unknown op evaluates to false.
func (g Gate) Evaluate(op Op) bool {
	switch op {
	case OpAnd:
		return g.And()
	case OpOr:
		return g.Or()
	case OpNand:
		return g.Nand()
	case OpNor:
		return g.Nor()
	case OpXor:
		return g.Xor()
	case OpXnor:
		return g.Xnor()
	default:
		return false
	}
}

// Truth gathers every reduction of a gate.
type Truth struct {
	And, Or, Nand, Nor, Xor, Xnor bool
	Not                           []bool
}

// Table evaluates all seven operations of g at once.
func (g Gate) Table() Truth {
	return Truth{
		And:  g.And(),
		Or:   g.Or(),
		Nand: g.Nand(),
		Nor:  g.Nor(),
		Xor:  g.Xor(),
		Xnor: g.Xnor(),
		Not:  g.Not(),
	}
}
