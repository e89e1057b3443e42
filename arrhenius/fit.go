// SPDX-License-Identifier: MIT

package arrhenius

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/af0liveira/qtp/numeric"
	"github.com/af0liveira/qtp/spline"
)

// MinPoints is the smallest rate series New accepts.
const MinPoints = spline.MinPoints

const opNew = "arrhenius.New"

// Fit is an interpolated ln k(β) curve.
type Fit struct {
	spl *spline.Cubic
}

// New fits ln k(β). The pairs may come in any order; they are sorted by β.
// Outside the sampled β range the end pieces are extrapolated.
//
// Errors:
//   - ErrLengthMismatch, ErrInsufficientData, ErrNonFinite.
//   - spline.ErrNotIncreasing (wrapped) for repeated β values.
func New(betas, lnks []float64) (*Fit, error) {
	if len(betas) != len(lnks) {
		return nil, arrheniusErrorf(opNew, ErrLengthMismatch)
	}
	if len(betas) < MinPoints {
		return nil, arrheniusErrorf(opNew, ErrInsufficientData)
	}
	for i := range betas {
		if !numeric.IsFinite(betas[i]) || !numeric.IsFinite(lnks[i]) {
			return nil, arrheniusErrorf(opNew, ErrNonFinite)
		}
	}

	xs := append([]float64(nil), betas...)
	order := make([]int, len(xs))
	floats.Argsort(xs, order)
	ys := make([]float64, len(order))
	for i, k := range order {
		ys[i] = lnks[k]
	}

	spl, err := spline.New(xs, ys, spline.WithExtrapolation(spline.Extrapolate))
	if err != nil {
		return nil, arrheniusErrorf(opNew, err)
	}

	return &Fit{spl: spl}, nil
}

// Domain returns the sampled β range.
func (f *Fit) Domain() (lo, hi float64) { return f.spl.Domain() }

// LnK returns the interpolated ln k at β.
func (f *Fit) LnK(beta float64) float64 { return f.spl.Evaluate(beta) }

// Evaluate returns the activation energy and the prefactor at β.
func (f *Fit) Evaluate(beta float64) (eAct, prefactor float64) {
	eAct = -f.spl.Derivative(beta, 1)
	prefactor = math.Exp(f.spl.Evaluate(beta) + beta*eAct)

	return eAct, prefactor
}
