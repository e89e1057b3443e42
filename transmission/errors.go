// SPDX-License-Identifier: MIT

package transmission

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBarrier indicates a missing barrier model.
	ErrNilBarrier = errors.New("transmission: barrier is nil")

	// ErrInvalidMass indicates a mass that is not a finite positive number.
	ErrInvalidMass = errors.New("transmission: mass must be finite and > 0")

	// ErrInvalidPosition indicates a NaN or infinite probe position.
	ErrInvalidPosition = errors.New("transmission: probe position must be finite")

	// ErrTopology indicates a turning-point count that does not match the
	// selected topology, even after the symmetric fallback.
	ErrTopology = errors.New("transmission: unexpected number of turning points")
)

// TopologyError reports a probe position whose turning points could not be
// resolved. It matches ErrTopology under errors.Is.
type TopologyError struct {
	Z         float64   // probe position
	Topology  Topology  // topology in effect
	Crossings []float64 // crossings that were found
}

// Error implements error.
func (e *TopologyError) Error() string {
	return fmt.Sprintf("%v (z=%g, topology=%s, crossings=%v)", ErrTopology, e.Z, e.Topology, e.Crossings)
}

// Unwrap exposes ErrTopology.
func (e *TopologyError) Unwrap() error { return ErrTopology }

// transmissionErrorf wraps err with an operation tag.
func transmissionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
