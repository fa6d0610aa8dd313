// SPDX-License-Identifier: MIT

package vector

import "errors"

// ErrTooFewVectors indicates that a reduction was requested over fewer than
// two vectors.
var ErrTooFewVectors = errors.New("vector: at least two vectors are required")
