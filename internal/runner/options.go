// SPDX-License-Identifier: MIT

package runner

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option customizes a Runner before its first use.
// Options are applied in order; later ones override earlier ones.
type Option func(*Runner)

// WithLogger sets the logger progress and skipped work are reported to.
// Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.log = l
	}
}

// WithOutput sets the writer reports are rendered to. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("runner: WithOutput(nil)")
	}
	return func(r *Runner) {
		r.out = w
	}
}
