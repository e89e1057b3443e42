// SPDX-License-Identifier: MIT

package spline

import (
	"math"
	"sort"

	"github.com/af0liveira/qtp/matrix"
)

// MinPoints is the smallest number of knots accepted by New.
const MinPoints = 4

const opNew = "spline.New"

// Cubic is a fitted piecewise cubic interpolant.
//
// Piece i covers [xs[i], xs[i+1]] and, with t = x - xs[i], equals
//
//	ys[i] + b[i]·t + c[i]·t² + d[i]·t³
type Cubic struct {
	xs, ys  []float64
	b, c, d []float64
	ext     Extrapolation
}

// New fits the not-a-knot cubic interpolant through (xs[i], ys[i]).
//
// Implementation:
//   - Stage 1: Validate lengths, finiteness and strictly increasing xs.
//   - Stage 2: Assemble the n×n system for the knot second derivatives M:
//     interior rows carry C² continuity, the first and last rows carry the
//     not-a-knot conditions; solve it with matrix.Solve.
//   - Stage 3: Convert M into per-piece polynomial coefficients.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewPoints, ErrNonFinite, ErrNotIncreasing.
//   - Wrapped matrix errors if the system is singular (cannot happen for
//     strictly increasing knots, but surfaced rather than hidden).
func New(xs, ys []float64, opts ...Option) (*Cubic, error) {
	if len(xs) != len(ys) {
		return nil, splineErrorf(opNew, ErrLengthMismatch)
	}
	n := len(xs)
	if n < MinPoints {
		return nil, splineErrorf(opNew, ErrTooFewPoints)
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return nil, splineErrorf(opNew, ErrNonFinite)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, splineErrorf(opNew, ErrNotIncreasing)
		}
	}

	cfg := newConfig(opts...)
	s := &Cubic{
		xs:  append([]float64(nil), xs...),
		ys:  append([]float64(nil), ys...),
		b:   make([]float64, n-1),
		c:   make([]float64, n-1),
		d:   make([]float64, n-1),
		ext: cfg.ext,
	}

	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		delta[i] = (ys[i+1] - ys[i]) / h[i]
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, splineErrorf(opNew, err)
	}
	rhs := make([]float64, n)
	set := func(i, j int, v float64) {
		if err == nil {
			err = a.Set(i, j, v)
		}
	}

	// Not-a-knot at x_1: S‴ continuous, i.e. (M1-M0)/h0 = (M2-M1)/h1.
	set(0, 0, h[1])
	set(0, 1, -(h[0] + h[1]))
	set(0, 2, h[0])
	// C² continuity at interior knots.
	for i := 1; i < n-1; i++ {
		set(i, i-1, h[i-1])
		set(i, i, 2*(h[i-1]+h[i]))
		set(i, i+1, h[i])
		rhs[i] = 6 * (delta[i] - delta[i-1])
	}
	// Not-a-knot at x_{n-2}.
	set(n-1, n-3, h[n-2])
	set(n-1, n-2, -(h[n-3] + h[n-2]))
	set(n-1, n-1, h[n-3])
	if err != nil {
		return nil, splineErrorf(opNew, err)
	}

	m, err := matrix.Solve(a, rhs)
	if err != nil {
		return nil, splineErrorf(opNew, err)
	}

	for i := 0; i < n-1; i++ {
		s.c[i] = m[i] / 2
		s.d[i] = (m[i+1] - m[i]) / (6 * h[i])
		s.b[i] = delta[i] - h[i]*(2*m[i]+m[i+1])/6
	}

	return s, nil
}

// Len returns the number of knots.
func (s *Cubic) Len() int { return len(s.xs) }

// Domain returns the knot range [x_0, x_{n-1}].
func (s *Cubic) Domain() (lo, hi float64) { return s.xs[0], s.xs[len(s.xs)-1] }

// Knots returns copies of the fitted points.
func (s *Cubic) Knots() (xs, ys []float64) {
	return append([]float64(nil), s.xs...), append([]float64(nil), s.ys...)
}

// Extrapolation returns the out-of-range policy.
func (s *Cubic) Extrapolation() Extrapolation { return s.ext }

// Evaluate returns S(x).
func (s *Cubic) Evaluate(x float64) float64 { return s.Derivative(x, 0) }

// Derivative returns the order-th derivative of S at x. Order 0 (or any
// negative order) is the value itself; orders above 3 are identically 0.
// Under the Zeros policy every order returns 0 outside the knot range.
func (s *Cubic) Derivative(x float64, order int) float64 {
	if s.ext == Zeros && s.outside(x) {
		return 0
	}
	i := s.piece(x)

	return s.derivAt(i, x-s.xs[i], order)
}

// outside reports whether x lies beyond the knot range.
func (s *Cubic) outside(x float64) bool {
	return x < s.xs[0] || x > s.xs[len(s.xs)-1]
}

// piece returns the index of the polynomial piece covering x. Points left of
// the range map to the first piece, points at or right of the last knot map
// to the last piece.
func (s *Cubic) piece(x float64) int {
	last := len(s.xs) - 2

	return sort.Search(last, func(k int) bool { return s.xs[k+1] > x })
}

// derivAt evaluates the order-th derivative of piece i at local offset t.
func (s *Cubic) derivAt(i int, t float64, order int) float64 {
	b, c, d := s.b[i], s.c[i], s.d[i]
	switch {
	case order <= 0:
		return s.ys[i] + t*(b+t*(c+t*d))
	case order == 1:
		return b + t*(2*c+3*d*t)
	case order == 2:
		return 2*c + 6*d*t
	case order == 3:
		return 6 * d
	default:
		return 0
	}
}
