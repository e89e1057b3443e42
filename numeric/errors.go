// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrBadBounds indicates NaN or infinite integration limits.
	ErrBadBounds = errors.New("numeric: integration bounds must be finite")

	// ErrNonFinite indicates that the integrand (or the estimate) became NaN or ±Inf.
	ErrNonFinite = errors.New("numeric: non-finite integrand value")
)
