// SPDX-License-Identifier: MIT

package logic

import "errors"

// ErrInsufficientInputs indicates a gate built from fewer than MinInputs values.
var ErrInsufficientInputs = errors.New("logic: a gate needs at least two inputs")
