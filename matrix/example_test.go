// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mathkit/matrix"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a := matrix.FromRows([][]int32{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]int32{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExamplePairwiseReduce reads three matrices and accumulates every pair.
func ExamplePairwiseReduce() {
	input := "1,2\n3,4\n\n5,6\n7,8\n\n1,0\n0,1\n"
	ms, err := matrix.ReadMatrices(strings.NewReader(input))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	red, err := matrix.PairwiseReduce(ms, len(ms), 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("sum:\n%v\n", red.Sum)
	fmt.Printf("product:\n%v\n", red.Product)
	// Output:
	// sum:
	// [14, 16]
	// [20, 26]
	// product:
	// [25, 30]
	// [50, 62]
}
