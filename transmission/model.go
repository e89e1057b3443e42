// SPDX-License-Identifier: MIT

package transmission

import (
	"math"

	"github.com/af0liveira/qtp/barrier"
	"github.com/af0liveira/qtp/numeric"
)

const (
	opNew      = "transmission.New"
	opEvaluate = "transmission.Evaluate"
)

// IntegrationLimit caps the number of panels of each WKB integral.
const IntegrationLimit = 500

// lnHalf is the reflection factor applied under DoublePeak.
var lnHalf = math.Log(0.5)

// Model evaluates T(E) for a particle of fixed mass through a fixed barrier.
type Model struct {
	b    *barrier.Model
	mass float64
}

// New binds a barrier and a particle mass (electron masses).
//
// Errors:
//   - ErrNilBarrier, ErrInvalidMass.
func New(b *barrier.Model, mass float64) (*Model, error) {
	if b == nil {
		return nil, transmissionErrorf(opNew, ErrNilBarrier)
	}
	if !numeric.IsFinite(mass) || mass <= 0 {
		return nil, transmissionErrorf(opNew, ErrInvalidMass)
	}

	return &Model{b: b, mass: mass}, nil
}

// Barrier returns the barrier the model integrates over.
func (m *Model) Barrier() *barrier.Model { return m.b }

// Mass returns the particle mass.
func (m *Model) Mass() float64 { return m.mass }

// Evaluate returns ln T and T for the energy E = U(z).
//
// Implementation:
//   - Stage 1: SelectTopology(b, z).
//   - Stage 2: Resolve the turning points for that topology.
//   - Stage 3: Integrate the clamped momentum deficit between them.
//
// Errors:
//   - ErrInvalidPosition for a non-finite z.
//   - *TopologyError (matches ErrTopology) when the turning points cannot
//     be resolved for this z.
//   - The barrier's ErrNoMaximum, or a wrapped integration failure.
func (m *Model) Evaluate(z float64) (lnT, t float64, err error) {
	if !numeric.IsFinite(z) {
		return 0, 0, transmissionErrorf(opEvaluate, ErrInvalidPosition)
	}
	topo, err := SelectTopology(m.b, z)
	if err != nil {
		return 0, 0, transmissionErrorf(opEvaluate, err)
	}

	switch topo {
	case DoublePeak:
		lnT, err = m.doublePeak(z)
	default:
		lnT, err = m.singlePeak(z)
	}
	if err != nil {
		return 0, 0, err
	}

	return lnT, math.Exp(lnT), nil
}

func (m *Model) singlePeak(z float64) (float64, error) {
	if numeric.IsZero(z) {
		return 0, nil
	}
	e := m.b.Evaluate(z)
	zs := m.b.LevelCrossings(numeric.RoundTo(e, numeric.LevelDecimals))
	if len(zs) != 2 && len(zs) > 0 {
		// Noise near the top: keep the outermost crossing and its mirror.
		far := 0.0
		for _, r := range zs {
			far = math.Max(far, math.Abs(r))
		}
		zs = []float64{-far, far}
	}
	if len(zs) != 2 {
		return 0, &TopologyError{Z: z, Topology: SinglePeak, Crossings: zs}
	}

	return m.wkb(e, zs[0], zs[1])
}

func (m *Model) doublePeak(z float64) (float64, error) {
	zStar, uStar, err := m.b.Maximum()
	if err != nil {
		return 0, transmissionErrorf(opEvaluate, err)
	}
	e := m.b.Evaluate(z)
	if numeric.Equal(e, uStar) {
		return lnHalf, nil
	}

	var zs []float64
	for _, r := range m.b.LevelCrossings(numeric.RoundTo(e, numeric.LevelDecimals)) {
		if r <= 0 {
			zs = append(zs, r)
		}
	}
	// The probe sits at the bottom of the central well and its inner
	// crossing was lost; the origin closes the interval.
	if len(zs) == 1 &&
		numeric.Equal(m.b.Evaluate(0), m.b.Evaluate(zs[0])) &&
		zs[0] <= zStar {
		zs = append(zs, 0)
	}
	if len(zs) != 2 {
		return 0, &TopologyError{Z: z, Topology: DoublePeak, Crossings: zs}
	}

	lnT, err := m.wkb(e, zs[0], zs[1])
	if err != nil {
		return 0, err
	}

	return lnHalf + lnT, nil
}

// wkb returns -2·sqrt(2m)·∫ sqrt(U - e) over [lo, hi], with the integrand
// clamped to 0 wherever U - e is not clearly positive.
func (m *Model) wkb(e, lo, hi float64) (float64, error) {
	integrand := func(x float64) float64 {
		d := m.b.Evaluate(x) - e
		if d < numeric.Epsilon {
			return 0
		}
		return math.Sqrt(d)
	}
	res, err := numeric.Integrate(integrand, lo, hi, numeric.WithLimit(IntegrationLimit))
	if err != nil {
		return 0, transmissionErrorf(opEvaluate, err)
	}

	return -2 * math.Sqrt(2*m.mass) * res.Value, nil
}
