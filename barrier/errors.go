// SPDX-License-Identifier: MIT

package barrier

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction indicates samples that cannot describe a barrier:
	// mismatched lengths, no samples, non-finite values, or too few distinct
	// symmetric points for a cubic fit.
	ErrConstruction = errors.New("barrier: invalid samples")

	// ErrNoMaximum indicates a barrier without any local maximum.
	ErrNoMaximum = errors.New("barrier: no maximum found")
)

// barrierErrorf tags err with the failing operation; both the sentinel and
// an optional cause stay visible to errors.Is.
func barrierErrorf(tag string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", tag, sentinel)
	}

	return fmt.Errorf("%s: %w: %w", tag, sentinel, cause)
}
