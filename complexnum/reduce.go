// SPDX-License-Identifier: MIT

package complexnum

import "fmt"

// Reduction holds the sequential left folds of a batch.
type Reduction struct {
	Sum        Complex // c0 + c1 + ... + cn
	Difference Complex // c0 − c1 − ... − cn
	Product    Complex // c0 · c1 · ... · cn
	Quotient   Complex // ((c0 / c1) / c2) / ...
}

// Reduce folds cs left to right starting from cs[0].
// A single number reduces to itself under all four folds.
// The first zero divisor aborts the whole reduction: the returned error
// wraps ErrDivisionByZero with the divisor's index and no partial Reduction
// is returned.
// Complexity: O(len(cs)).
func Reduce(cs []Complex) (Reduction, error) {
	if len(cs) == 0 {
		return Reduction{}, ErrNoNumbers
	}

	red := Reduction{Sum: cs[0], Difference: cs[0], Product: cs[0], Quotient: cs[0]}
	for i := 1; i < len(cs); i++ {
		c := cs[i]
		red.Sum = Add(red.Sum, c)
		red.Difference = Sub(red.Difference, c)
		red.Product = Mul(red.Product, c)

		q, err := Div(red.Quotient, c)
		if err != nil {
			return Reduction{}, fmt.Errorf("Reduce: divisor %d: %w", i, err)
		}
		red.Quotient = q
	}

	return red, nil
}
