// SPDX-License-Identifier: MIT

package arrhenius

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates len(betas) != len(lnks).
	ErrLengthMismatch = errors.New("arrhenius: betas and ln k values must have the same length")

	// ErrInsufficientData indicates fewer than MinPoints samples. It is
	// advisory: callers skip the analysis instead of failing.
	ErrInsufficientData = errors.New("arrhenius: not enough points for a cubic fit")

	// ErrNonFinite indicates a NaN or infinite β or ln k.
	ErrNonFinite = errors.New("arrhenius: samples must be finite")
)

func arrheniusErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
