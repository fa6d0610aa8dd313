// SPDX-License-Identifier: MIT

package complexnum

import "errors"

var (
	// ErrDivisionByZero indicates a division by the complex number 0 + 0i.
	ErrDivisionByZero = errors.New("complexnum: division by zero")

	// ErrNoNumbers indicates a reduction over an empty batch.
	ErrNoNumbers = errors.New("complexnum: at least one number is required")
)
