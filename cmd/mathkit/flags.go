// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/mathkit/internal/config"
	"github.com/katalvlaran/mathkit/internal/runner"
	"gopkg.in/alecthomas/kingpin.v2"
)

// scalarKind selects which --scalar flag, if any, a command takes.
type scalarKind int

const (
	noScalar scalarKind = iota
	intScalar
	floatScalar
)

// commandFlags holds the flags of one subcommand together with the names of
// those given on the command line; only those override the configuration.
type commandFlags struct {
	kind   runner.Kind
	clause *kingpin.CmdClause

	file        string
	count       int
	intScalar   int32
	floatScalar float64

	given map[string]bool
}

func newCommand(app *kingpin.Application, kind runner.Kind, help string, scalar scalarKind) *commandFlags {
	c := &commandFlags{kind: kind, given: map[string]bool{}}
	c.clause = app.Command(string(kind), help)

	c.clause.Flag("file", "Input file.").Short('f').PlaceHolder("FILE").
		Action(c.mark("file")).StringVar(&c.file)
	c.clause.Flag("count", "Number of records to use; 0 uses every record.").Short('n').PlaceHolder("N").
		Action(c.mark("count")).IntVar(&c.count)

	switch scalar {
	case intScalar:
		c.clause.Flag("scalar", "Integer factor applied to the left matrix of each pair.").Short('k').PlaceHolder("K").
			Action(c.mark("scalar")).Int32Var(&c.intScalar)
	case floatScalar:
		c.clause.Flag("scalar", "Factor applied to every vector.").Short('k').PlaceHolder("S").
			Action(c.mark("scalar")).Float64Var(&c.floatScalar)
	}

	return c
}

func (c *commandFlags) mark(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		c.given[name] = true
		return nil
	}
}

// apply copies every given flag into the section of cfg for c.kind.
func (c *commandFlags) apply(cfg *config.Config) {
	switch c.kind {
	case runner.KindSets:
		c.applyInput(&cfg.Sets)
	case runner.KindMatrices:
		c.applyInput(&cfg.Matrices.Input)
		if c.given["scalar"] {
			cfg.Matrices.Scalar = c.intScalar
		}
	case runner.KindVectors:
		c.applyInput(&cfg.Vectors.Input)
		if c.given["scalar"] {
			cfg.Vectors.Scalar = c.floatScalar
		}
	case runner.KindLogic:
		c.applyInput(&cfg.Logic)
	case runner.KindComplex:
		c.applyInput(&cfg.Complex)
	}
}

func (c *commandFlags) applyInput(in *config.Input) {
	if c.given["file"] {
		in.File = c.file
	}
	if c.given["count"] {
		in.Count = c.count
	}
}
