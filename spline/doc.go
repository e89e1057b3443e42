// SPDX-License-Identifier: MIT

// Package spline fits exact (zero-smoothing) cubic interpolants through
// sampled 1D data and answers the questions the barrier and rate models ask
// of them: values, derivatives, level crossings and stationary points.
//
// What is fitted?
//
//	A piecewise cubic S through every (x_i, y_i), continuous through its
//	second derivative, with not-a-knot end conditions: the third derivative is
//	also continuous at x_1 and x_{n-2}, so the first two and the last two
//	pieces are single polynomials. This is the interpolant a B-spline fit of
//	degree 3 with zero smoothing produces.
//
// Key features:
//   - Value and derivatives of order 0..3 (higher orders are identically 0).
//   - Extrapolation policy: continue the end polynomials (Extrapolate) or
//     vanish outside the knot range (Zeros), derivatives included.
//   - Roots(c): every x in the knot range with S(x) = c.
//   - StationaryPoints(): every root of S′ in the knot range.
//
// Usage:
//
//	s, err := spline.New(xs, ys, spline.WithExtrapolation(spline.Zeros))
//	if err != nil {
//	  // ErrTooFewPoints, ErrLengthMismatch, ErrNotIncreasing, ErrNonFinite
//	}
//	y := s.Evaluate(0.3)
//	slope := s.Derivative(0.3, 1)
//	crossings := s.Roots(0.25)
//
// A fitted *Cubic is immutable and safe for concurrent readers.
//
// Complexity:
//
//	New O(n³) (dense pivoted LU over n knots; n is small), Evaluate O(log n),
//	Roots/StationaryPoints O(n).
package spline
