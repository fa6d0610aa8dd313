// SPDX-License-Identifier: MIT

// Package runner reads a batch of one kind of math object, selects the
// requested number of records, reduces them and renders a plain-text report.
//
// Each kind has its own entry point taking an io.Reader (Sets, Matrices,
// Vectors, Logic, Complex); Run resolves the input file and the tunables of
// a kind from a config.Config and dispatches to it.
//
// Count selection is shared by every kind: a negative count is rejected, 0
// selects every record read, and a count larger than what the input holds
// fails with ErrNotEnough.
package runner

import (
	"bufio"
	"io"
	"os"

	"github.com/katalvlaran/mathkit/internal/config"
	"github.com/katalvlaran/mathkit/internal/record"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Kind names one family of math objects.
type Kind string

// Supported kinds; each doubles as a command name.
const (
	KindSets     Kind = "sets"
	KindMatrices Kind = "matrices"
	KindVectors  Kind = "vectors"
	KindLogic    Kind = "logic"
	KindComplex  Kind = "complex"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{KindSets, KindMatrices, KindVectors, KindLogic, KindComplex}

// minCount is the smallest selection each kind accepts.
var minCount = map[Kind]int{
	KindSets:     1,
	KindMatrices: 1,
	KindVectors:  2,
	KindLogic:    1,
	KindComplex:  1,
}

// Runner renders reductions to an output writer.
// A Runner holds no per-run state and may be reused.
type Runner struct {
	out io.Writer
	log *logrus.Logger
}

// New returns a Runner writing to os.Stdout and logging through the
// standard logrus logger unless overridden by opts.
func New(opts ...Option) *Runner {
	r := &Runner{out: os.Stdout, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run opens the input file configured for kind and renders its report with
// the configured count and scalar.
func (r *Runner) Run(kind Kind, cfg config.Config) error {
	switch kind {
	case KindSets:
		return r.fromFile(cfg.Sets.File, func(in io.Reader) error {
			return r.Sets(in, cfg.Sets.Count)
		})
	case KindMatrices:
		return r.fromFile(cfg.Matrices.File, func(in io.Reader) error {
			return r.Matrices(in, cfg.Matrices.Count, cfg.Matrices.Scalar)
		})
	case KindVectors:
		return r.fromFile(cfg.Vectors.File, func(in io.Reader) error {
			return r.Vectors(in, cfg.Vectors.Count, cfg.Vectors.Scalar)
		})
	case KindLogic:
		return r.fromFile(cfg.Logic.File, func(in io.Reader) error {
			return r.Logic(in, cfg.Logic.Count)
		})
	case KindComplex:
		return r.fromFile(cfg.Complex.File, func(in io.Reader) error {
			return r.Complex(in, cfg.Complex.Count)
		})
	default:
		return errors.Wrapf(ErrUnknownKind, "%q", string(kind))
	}
}

func (r *Runner) fromFile(path string, fn func(io.Reader) error) error {
	rc, err := record.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r.log.WithField("file", path).Debug("reading input")

	return errors.WithMessage(fn(rc), path)
}

// selectCount resolves the requested count n against the number of records
// available for kind.
func selectCount(kind Kind, n, available int) (int, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrBadCount, "%s: count %d", kind, n)
	}
	if n == 0 {
		n = available
	}
	if n > available {
		return 0, errors.Wrapf(ErrNotEnough, "%s: want %d, have %d", kind, n, available)
	}
	if least := minCount[kind]; n < least {
		return 0, errors.Wrapf(ErrBadCount, "%s: count %d, need at least %d", kind, n, least)
	}

	return n, nil
}

// begin logs the start of a report and returns a buffered view of r.out.
func (r *Runner) begin(kind Kind, n, available int) *bufio.Writer {
	r.log.WithFields(logrus.Fields{
		"kind":      string(kind),
		"count":     n,
		"available": available,
	}).Info("reducing")

	return bufio.NewWriter(r.out)
}

func flush(w *bufio.Writer) error {
	return errors.Wrap(w.Flush(), "runner: write report")
}
