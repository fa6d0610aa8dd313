// SPDX-License-Identifier: MIT

// Command mathkit reduces a batch of sets, matrices, vectors, logic inputs
// or complex numbers read from a file and prints the results.
//
//	mathkit [--config FILE] [--log-level LEVEL] sets     [--file F] [--count N]
//	mathkit [--config FILE] [--log-level LEVEL] matrices [--file F] [--count N] [--scalar K]
//	mathkit [--config FILE] [--log-level LEVEL] vectors  [--file F] [--count N] [--scalar S]
//	mathkit [--config FILE] [--log-level LEVEL] logic    [--file F] [--count N]
//	mathkit [--config FILE] [--log-level LEVEL] complex  [--file F] [--count N]
//
// Flags override the configuration file, which overrides the built-in
// defaults. A count of 0 uses every record of the file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/katalvlaran/mathkit/internal/config"
	"github.com/katalvlaran/mathkit/internal/runner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("mathkit", "Reduce batches of math objects read from delimited text files.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	configPath := app.Flag("config", "YAML configuration file.").PlaceHolder("FILE").String()
	logLevel := app.Flag("log-level", "Log level: panic, fatal, error, warn, info, debug or trace.").PlaceHolder("LEVEL").String()

	cmds := []*commandFlags{
		newCommand(app, runner.KindSets, "Union, intersection and difference of a batch of sets.", noScalar),
		newCommand(app, runner.KindMatrices, "Pairwise sums, differences and products of a batch of matrices.", intScalar),
		newCommand(app, runner.KindVectors, "Running sums, products and magnitudes of a batch of 3D vectors.", floatScalar),
		newCommand(app, runner.KindLogic, "Every logic gate over a batch of boolean inputs.", noScalar),
		newCommand(app, runner.KindComplex, "Sequential arithmetic over a batch of complex numbers.", noScalar),
	}

	selected, err := app.Parse(args)
	if err != nil {
		return fail(stderr, err)
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return fail(stderr, err)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	var cmd *commandFlags
	for _, c := range cmds {
		if c.clause.FullCommand() == selected {
			cmd = c
		}
	}
	if cmd == nil {
		return fail(stderr, errors.Errorf("unhandled command %q", selected))
	}
	cmd.apply(&cfg)
	if err = cfg.Validate(); err != nil {
		return fail(stderr, err)
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.Level())

	r := runner.New(runner.WithLogger(logger), runner.WithOutput(stdout))
	if err = r.Run(cmd.kind, cfg); err != nil {
		return fail(stderr, err)
	}

	return 0
}

// fail prints err in red and returns the failure exit code.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, color.RedString("mathkit: %v", err))

	return 1
}
