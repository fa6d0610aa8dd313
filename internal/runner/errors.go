// SPDX-License-Identifier: MIT

package runner

import "errors"

var (
	// ErrNotEnough indicates a count larger than the number of records read.
	ErrNotEnough = errors.New("runner: not enough records in input")

	// ErrBadCount indicates a negative count, or one below the minimum of
	// its kind.
	ErrBadCount = errors.New("runner: invalid record count")

	// ErrUnknownKind indicates a Kind outside the five supported ones.
	ErrUnknownKind = errors.New("runner: unknown kind")
)
