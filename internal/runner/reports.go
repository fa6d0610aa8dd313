// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mathkit/complexnum"
	"github.com/katalvlaran/mathkit/logic"
	"github.com/katalvlaran/mathkit/mathset"
	"github.com/katalvlaran/mathkit/matrix"
	"github.com/katalvlaran/mathkit/vector"
	"github.com/sirupsen/logrus"
)

// Sets reads sets from in and reports their union, intersection and
// difference over the first n of them.
func (r *Runner) Sets(in io.Reader, n int) error {
	sets, err := mathset.ReadSets(in)
	if err != nil {
		return err
	}
	total := len(sets)
	if n, err = selectCount(KindSets, n, total); err != nil {
		return err
	}
	sets = sets[:n]

	red, err := mathset.Reduce(sets)
	if err != nil {
		return err
	}

	w := r.begin(KindSets, n, total)
	for i, s := range sets {
		fmt.Fprintf(w, "Set %d: %v\n", i+1, s)
	}
	fmt.Fprintf(w, "Union: %v\n", red.Union)
	fmt.Fprintf(w, "Intersection: %v\n", red.Intersection)
	fmt.Fprintf(w, "Difference: %v\n", red.Difference)

	return flush(w)
}

// Matrices reads matrices from in and reports the pairwise sums,
// differences and products over the first n of them, plus the multiple by k
// of the left operand of every pair.
func (r *Runner) Matrices(in io.Reader, n int, k int32) error {
	ms, err := matrix.ReadMatrices(in)
	if err != nil {
		return err
	}
	if n, err = selectCount(KindMatrices, n, len(ms)); err != nil {
		return err
	}

	red, err := matrix.PairwiseReduce(ms, n, k)
	if err != nil {
		return err
	}
	for _, s := range red.Skipped {
		r.log.WithFields(logrus.Fields{
			"left":  s.I + 1,
			"right": s.J + 1,
			"op":    s.Op.String(),
		}).Debugf("pair skipped: %v", s.Err)
	}

	w := r.begin(KindMatrices, n, len(ms))
	for i, m := range ms[:n] {
		fmt.Fprintf(w, "Matrix %d:\n%v\n", i+1, m)
	}
	for _, e := range red.Scaled {
		fmt.Fprintf(w, "Scalar multiplication of Matrix %d (pair %d,%d):\n%v\n", e.I+1, e.I+1, e.J+1, e.Matrix)
	}
	fmt.Fprintf(w, "Result of Addition:\n%v\n", red.Sum)
	fmt.Fprintf(w, "Result of Subtraction:\n%v\n", red.Difference)
	fmt.Fprintf(w, "Result of Multiplication:\n%v\n", red.Product)

	return flush(w)
}

// Vectors reads vectors from in and reports the running reductions over the
// first n of them, then the magnitude and multiple by s of each.
func (r *Runner) Vectors(in io.Reader, n int, s float64) error {
	vs, skipped, err := vector.ReadVectorsWithSkips(in)
	if err != nil {
		return err
	}
	for _, line := range skipped {
		r.log.WithField("line", line).Debug("vector line skipped: need exactly 3 fields")
	}
	total := len(vs)
	if n, err = selectCount(KindVectors, n, total); err != nil {
		return err
	}
	vs = vs[:n]

	red, err := vector.Reduce(vs)
	if err != nil {
		return err
	}

	w := r.begin(KindVectors, n, total)
	for i, v := range vs {
		fmt.Fprintf(w, "Vector %d: %v\n", i+1, v)
	}
	fmt.Fprintf(w, "Result of Addition: %v\n", red.Sum)
	fmt.Fprintf(w, "Result of Subtraction: %v\n", red.Difference)
	fmt.Fprintf(w, "Result of Multiplication: %v\n", red.Accumulated)
	fmt.Fprintf(w, "Dot Product: %v\n", red.DotTotal)
	fmt.Fprintf(w, "Cross Product: %v\n", red.Cross)
	for i, sum := range vector.Describe(vs, s) {
		fmt.Fprintf(w, "Magnitude of Vector %d: %v\n", i+1, sum.Magnitude)
		fmt.Fprintf(w, "Scalar multiplication of Vector %d: %v\n", i+1, sum.Scaled)
	}

	return flush(w)
}

// Logic reads boolean inputs from in and reports every gate over the first
// n of them.
func (r *Runner) Logic(in io.Reader, n int) error {
	inputs, err := logic.ReadInputs(in)
	if err != nil {
		return err
	}
	if n, err = selectCount(KindLogic, n, len(inputs)); err != nil {
		return err
	}

	g, err := logic.New(inputs[:n])
	if err != nil {
		return err
	}

	w := r.begin(KindLogic, n, len(inputs))
	fmt.Fprintf(w, "Inputs: %v\n", g.Inputs())
	for _, op := range logic.Ops {
		fmt.Fprintf(w, "%s: %t\n", op, g.Evaluate(op))
		if op == logic.OpOr {
			fmt.Fprintf(w, "NOT: %v\n", g.Not()) // per-input line sits after OR
		}
	}

	return flush(w)
}

// Complex reads complex numbers from in and reports the sequential folds
// over the first n of them. A zero divisor aborts before anything is
// written.
func (r *Runner) Complex(in io.Reader, n int) error {
	cs, err := complexnum.ReadComplex(in)
	if err != nil {
		return err
	}
	total := len(cs)
	if n, err = selectCount(KindComplex, n, total); err != nil {
		return err
	}
	cs = cs[:n]

	red, err := complexnum.Reduce(cs)
	if err != nil {
		r.log.WithError(err).Warn("complex reduction aborted")
		return err
	}

	w := r.begin(KindComplex, n, total)
	for i, c := range cs {
		fmt.Fprintf(w, "Complex Number %d: %v\n", i+1, c)
	}
	fmt.Fprintf(w, "Addition Result: %v\n", red.Sum)
	fmt.Fprintf(w, "Subtraction Result: %v\n", red.Difference)
	fmt.Fprintf(w, "Multiplication Result: %v\n", red.Product)
	fmt.Fprintf(w, "Division Result: %v\n", red.Quotient)

	return flush(w)
}
