// SPDX-License-Identifier: MIT

package flux

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a missing transmission model.
	ErrNilModel = errors.New("flux: transmission model is nil")

	// ErrInvalidBeta indicates an inverse temperature that is not a finite
	// positive number.
	ErrInvalidBeta = errors.New("flux: beta must be finite and > 0")

	// ErrIntegrationBounds indicates that no negative lower bound for the
	// tunneling integral exists.
	ErrIntegrationBounds = errors.New("flux: no valid lower integration bound")
)

// BoundsError reports the β whose tunneling integral had no usable lower
// bound. It matches ErrIntegrationBounds under errors.Is.
type BoundsError struct {
	Beta float64 // inverse temperature being evaluated
	Low  float64 // offending lower bound (NaN when none was found)
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v (beta=%g, z_low=%g)", ErrIntegrationBounds, e.Beta, e.Low)
}

// Unwrap exposes ErrIntegrationBounds.
func (e *BoundsError) Unwrap() error { return ErrIntegrationBounds }

func fluxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
