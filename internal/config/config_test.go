// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/mathkit/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sets.csv", cfg.Sets.File)
	assert.Equal(t, "matrix.csv", cfg.Matrices.File)
	assert.Equal(t, "vectors.csv", cfg.Vectors.File)
	assert.Equal(t, "booleans.csv", cfg.Logic.File)
	assert.Equal(t, "complex.csv", cfg.Complex.File)
	assert.Equal(t, int32(1), cfg.Matrices.Scalar)
	assert.Equal(t, 1.0, cfg.Vectors.Scalar)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestLoad_Overlay(t *testing.T) {
	doc := `
log_level: debug
matrices:
  count: 3
  scalar: -2
vectors:
  file: data/v.csv
  scalar: 0.5
`
	cfg, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, "matrix.csv", cfg.Matrices.File, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Matrices.Count)
	assert.Equal(t, int32(-2), cfg.Matrices.Scalar)
	assert.Equal(t, "data/v.csv", cfg.Vectors.File)
	assert.Equal(t, 0.5, cfg.Vectors.Scalar)
	assert.Equal(t, "sets.csv", cfg.Sets.File)
}

func TestLoad_EmptyDocument(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{name: "unknown key", doc: "colour: red\n"},
		{name: "wrong type", doc: "sets:\n  count: many\n"},
		{name: "scalar overflow", doc: "matrices:\n  scalar: 4294967296\n"},
		{name: "bad level", doc: "log_level: loud\n", invalid: true},
		{name: "negative count", doc: "logic:\n  count: -1\n", invalid: true},
		{name: "empty file", doc: "complex:\n  file: \"\"\n", invalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				assert.Contains(t, err.Error(), "config: decode")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sets:\n  count: 2\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Sets.Count)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
