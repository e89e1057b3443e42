// SPDX-License-Identifier: MIT

package flux

import (
	"math"

	"github.com/af0liveira/qtp/barrier"
	"github.com/af0liveira/qtp/numeric"
	"github.com/af0liveira/qtp/transmission"
)

const (
	opNew      = "flux.New"
	opEvaluate = "flux.Evaluate"
)

// IntegrationLimit caps the panels of the tunneling integral.
const IntegrationLimit = 50

// Model evaluates the flux components at a given β. The barrier maximum is
// resolved once, at construction.
type Model struct {
	t     *transmission.Model
	b     *barrier.Model
	mass  float64
	zStar float64
	uStar float64
}

// New binds a transmission model.
//
// Errors:
//   - ErrNilModel, or the barrier's ErrNoMaximum (wrapped).
func New(t *transmission.Model) (*Model, error) {
	if t == nil {
		return nil, fluxErrorf(opNew, ErrNilModel)
	}
	b := t.Barrier()
	zStar, uStar, err := b.Maximum()
	if err != nil {
		return nil, fluxErrorf(opNew, err)
	}

	return &Model{t: t, b: b, mass: t.Mass(), zStar: zStar, uStar: uStar}, nil
}

// Maximum returns the cached barrier maximum (z*, U*).
func (m *Model) Maximum() (z, u float64) { return m.zStar, m.uStar }

// Classical returns j_c(β). β must already be validated.
func (m *Model) Classical(beta float64) float64 {
	return math.Exp(-beta*m.uStar) / math.Sqrt(2*math.Pi*m.mass*beta)
}

// Evaluate returns the classical, quantum and total flux at β.
//
// Implementation:
//   - Stage 1: Validate β and compute j_c.
//   - Stage 2: A flat barrier (U* <= Floor) has U′ ≡ 0, so j_q = 0.
//   - Stage 3: Otherwise locate z_low, the first crossing of Floor, and
//     integrate T·exp(-βU)·U′ from z_low to z*. The first transmission error
//     inside the integrand aborts the evaluation.
//
// Errors:
//   - ErrInvalidBeta.
//   - *BoundsError (matches ErrIntegrationBounds) when z_low is missing or
//     not negative.
//   - Transmission or integration errors, wrapped.
func (m *Model) Evaluate(beta float64) (classical, quantum, total float64, err error) {
	if !numeric.IsFinite(beta) || beta <= 0 {
		return 0, 0, 0, fluxErrorf(opEvaluate, ErrInvalidBeta)
	}
	classical = m.Classical(beta)
	if m.uStar <= numeric.Floor {
		return classical, 0, classical, nil
	}

	low := m.b.LevelCrossings(numeric.Floor)
	if len(low) == 0 {
		return 0, 0, 0, &BoundsError{Beta: beta, Low: math.NaN()}
	}
	if low[0] >= 0 {
		return 0, 0, 0, &BoundsError{Beta: beta, Low: low[0]}
	}

	var inner error
	integrand := func(x float64) float64 {
		if inner != nil {
			return 0
		}
		_, tr, err := m.t.Evaluate(x)
		if err != nil {
			inner = err
			return 0
		}
		return tr * math.Exp(-beta*m.b.Evaluate(x)) * m.b.Derivative(x, 1)
	}
	res, err := numeric.Integrate(integrand, low[0], m.zStar, numeric.WithLimit(IntegrationLimit))
	if inner != nil {
		return 0, 0, 0, fluxErrorf(opEvaluate, inner)
	}
	if err != nil {
		return 0, 0, 0, fluxErrorf(opEvaluate, err)
	}

	quantum = math.Sqrt(beta/(2*math.Pi*m.mass)) * res.Value

	return classical, quantum, classical + quantum, nil
}

// RateFactor converts a flux into a rate constant: k = j·sqrt(2π·m·β).
func RateFactor(mass, beta float64) float64 {
	return math.Sqrt(2 * math.Pi * mass * beta)
}
