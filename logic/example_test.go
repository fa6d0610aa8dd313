// SPDX-License-Identifier: MIT

package logic_test

import (
	"fmt"

	"github.com/katalvlaran/mathkit/logic"
)

func ExampleGate_Evaluate() {
	g, err := logic.New([]bool{true, false, true, true, false})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, op := range logic.Ops {
		fmt.Printf("%s: %t\n", op, g.Evaluate(op))
	}
	fmt.Println("NOT:", g.Not())
	// Output:
	// AND: false
	// OR: true
	// NAND: true
	// NOR: false
	// XOR: true
	// XNOR: false
	// NOT: [false true false false true]
}
