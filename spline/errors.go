// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints indicates fewer than MinPoints knots.
	ErrTooFewPoints = errors.New("spline: at least 4 points are required for a cubic fit")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("spline: xs and ys must have the same length")

	// ErrNotIncreasing indicates knots that are not strictly increasing.
	ErrNotIncreasing = errors.New("spline: xs must be strictly increasing")

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("spline: samples must be finite")
)

// splineErrorf wraps err with an operation tag, preserving it for errors.Is.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
