// SPDX-License-Identifier: MIT

package barrier

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/af0liveira/qtp/numeric"
	"github.com/af0liveira/qtp/spline"
)

const opNew = "barrier.New"

// Model is a symmetric potential-energy barrier U(z) with U(z) = U(-z) and
// min U = 0 over the sampled points.
type Model struct {
	zs, us []float64
	spl    *spline.Cubic

	maxOnce sync.Once
	zMax    float64
	uMax    float64
	maxErr  error
}

// New builds a barrier from raw samples (positions in bohr, energies in hartree).
//
// Implementation:
//   - Stage 1: Validate: equal non-zero lengths, finite values.
//   - Stage 2: Symmetrize (fold, average near-duplicates, mirror, shift).
//   - Stage 3: Fit an exact cubic that vanishes outside the sampled range.
//
// Errors:
//   - ErrConstruction for every malformed input, with the underlying cause
//     attached when there is one (e.g. spline.ErrTooFewPoints).
func New(zs, us []float64) (*Model, error) {
	if len(zs) != len(us) || len(zs) == 0 {
		return nil, barrierErrorf(opNew, ErrConstruction, nil)
	}
	for i := range zs {
		if !numeric.IsFinite(zs[i]) || !numeric.IsFinite(us[i]) {
			return nil, barrierErrorf(opNew, ErrConstruction, nil)
		}
	}

	sz, su := symmetrize(zs, us)
	spl, err := spline.New(sz, su, spline.WithExtrapolation(spline.Zeros))
	if err != nil {
		return nil, barrierErrorf(opNew, ErrConstruction, err)
	}

	return &Model{zs: sz, us: su, spl: spl}, nil
}

// symmetrize returns the ascending symmetric point set derived from the
// samples. Inputs are not modified.
func symmetrize(zs, us []float64) ([]float64, []float64) {
	folded := make([]float64, len(zs))
	for i, z := range zs {
		folded[i] = math.Abs(z)
	}
	order := make([]int, len(folded))
	floats.Argsort(folded, order)

	// Right half: one averaged point per cluster of folded positions lying
	// within Epsilon of the cluster's first member.
	var rz, ru []float64
	for start := 0; start < len(folded); {
		end := start + 1
		for end < len(folded) && numeric.Equal(folded[end], folded[start]) {
			end++
		}
		cu := make([]float64, 0, end-start)
		for _, k := range order[start:end] {
			cu = append(cu, us[k])
		}
		rz = append(rz, stat.Mean(folded[start:end], nil))
		ru = append(ru, stat.Mean(cu, nil))
		start = end
	}

	var sz, su []float64
	for i := len(rz) - 1; i >= 0; i-- {
		if rz[i] > numeric.Epsilon {
			sz = append(sz, -rz[i])
			su = append(su, ru[i])
		}
	}
	sz = append(sz, rz...)
	su = append(su, ru...)

	floats.AddConst(-floats.Min(su), su)

	return sz, su
}

// Evaluate returns U(z); 0 outside the sampled range.
func (m *Model) Evaluate(z float64) float64 { return m.spl.Evaluate(z) }

// Derivative returns the order-th derivative of U at z; 0 outside the
// sampled range.
func (m *Model) Derivative(z float64, order int) float64 { return m.spl.Derivative(z, order) }

// LevelCrossings returns every z in the sampled range with U(z) = u0,
// ascending. The count is not checked here; it depends on the barrier shape
// and on u0, and callers decide what they expect.
func (m *Model) LevelCrossings(u0 float64) []float64 { return m.spl.Roots(u0) }

// Domain returns the sampled position range [-zmax, zmax].
func (m *Model) Domain() (lo, hi float64) { return m.spl.Domain() }

// Points returns copies of the symmetrized, shifted points the barrier
// interpolates.
func (m *Model) Points() (zs, us []float64) {
	return append([]float64(nil), m.zs...), append([]float64(nil), m.us...)
}
