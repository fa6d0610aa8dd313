// SPDX-License-Identifier: MIT

// Package config holds the tunables of the mathkit command: where each kind
// of input is read from, how many records to use and which scalar factors to
// apply, plus the log level.
//
// A Config starts from Default and may be overlaid by a YAML document:
//
//	log_level: debug
//	matrices:
//	  file: data/matrix.csv
//	  count: 3
//	  scalar: 2
//
// Unknown keys are rejected.
package config

import (
	stderrors "errors"
	"io"

	"github.com/katalvlaran/mathkit/internal/record"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = stderrors.New("config: invalid configuration")

// Input locates one kind of input and how many of its records to use.
// A Count of 0 selects every record of the file.
type Input struct {
	File  string `yaml:"file"`
	Count int    `yaml:"count"`
}

// MatrixInput adds the integer factor applied to each left operand.
type MatrixInput struct {
	Input  `yaml:",inline"`
	Scalar int32 `yaml:"scalar"`
}

// VectorInput adds the factor applied to every selected vector.
type VectorInput struct {
	Input  `yaml:",inline"`
	Scalar float64 `yaml:"scalar"`
}

// Config is the full set of command tunables.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Sets     Input       `yaml:"sets"`
	Matrices MatrixInput `yaml:"matrices"`
	Vectors  VectorInput `yaml:"vectors"`
	Logic    Input       `yaml:"logic"`
	Complex  Input       `yaml:"complex"`
}

// Default input files, relative to the working directory.
const (
	DefaultSetsFile     = "sets.csv"
	DefaultMatricesFile = "matrix.csv"
	DefaultVectorsFile  = "vectors.csv"
	DefaultLogicFile    = "booleans.csv"
	DefaultComplexFile  = "complex.csv"
)

// Default returns a Config that reads every record of the conventional input
// files, scales by 1 and logs at info level.
func Default() Config {
	return Config{
		LogLevel: logrus.InfoLevel.String(),
		Sets:     Input{File: DefaultSetsFile},
		Matrices: MatrixInput{Input: Input{File: DefaultMatricesFile}, Scalar: 1},
		Vectors:  VectorInput{Input: Input{File: DefaultVectorsFile}, Scalar: 1},
		Logic:    Input{File: DefaultLogicFile},
		Complex:  Input{File: DefaultComplexFile},
	}
}

// Load overlays the YAML document read from r onto Default and validates the
// result. An empty document yields Default.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "config: decode")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads and validates the YAML file at path.
func LoadFile(path string) (Config, error) {
	return record.Load(path, Load)
}

// Validate checks every field; the first violation is returned wrapped
// around ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}

	inputs := []struct {
		key string
		in  Input
	}{
		{"sets", c.Sets},
		{"matrices", c.Matrices.Input},
		{"vectors", c.Vectors.Input},
		{"logic", c.Logic},
		{"complex", c.Complex},
	}
	for _, it := range inputs {
		if it.in.File == "" {
			return errors.Wrapf(ErrInvalidConfig, "%s.file is empty", it.key)
		}
		if it.in.Count < 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s.count %d is negative", it.key, it.in.Count)
		}
	}

	return nil
}

// Level returns the parsed log level. It assumes c has been validated and
// falls back to info otherwise.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
