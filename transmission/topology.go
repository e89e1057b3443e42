// SPDX-License-Identifier: MIT

package transmission

import (
	"github.com/af0liveira/qtp/barrier"
	"github.com/af0liveira/qtp/numeric"
)

// Topology tells which turning points bound the WKB integral.
type Topology int

const (
	// SinglePeak: the barrier peaks at the origin, or the probe energy is
	// below U(0) so the central well is invisible. Turning points are the
	// symmetric pair ±z1.
	SinglePeak Topology = iota

	// DoublePeak: the barrier peaks away from the origin and the probe energy
	// is at least U(0). Only the left peak is crossed, between the two
	// turning points on the negative side.
	DoublePeak
)

// String implements fmt.Stringer.
func (t Topology) String() string {
	switch t {
	case SinglePeak:
		return "single-peak"
	case DoublePeak:
		return "double-peak"
	default:
		return "unknown"
	}
}

// SelectTopology classifies the probe at z against the barrier b. It is a
// pure function of its arguments.
//
// Errors:
//   - ErrNilBarrier, or the barrier's ErrNoMaximum.
func SelectTopology(b *barrier.Model, z float64) (Topology, error) {
	if b == nil {
		return SinglePeak, ErrNilBarrier
	}
	zStar, _, err := b.Maximum()
	if err != nil {
		return SinglePeak, err
	}
	if numeric.IsZero(zStar) || b.Evaluate(z) < b.Evaluate(0) {
		return SinglePeak, nil
	}

	return DoublePeak, nil
}
