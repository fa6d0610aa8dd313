// SPDX-License-Identifier: MIT

package mathset

import "errors"

// ErrNoSets indicates that a reduction was requested over zero sets.
var ErrNoSets = errors.New("mathset: at least one set is required")
