// SPDX-License-Identifier: MIT

package spline

import (
	"math"
	"sort"
)

// machEps is the float64 unit roundoff (2^-52).
const machEps = 0x1p-52

const (
	// zeroTolFactor scales the per-piece rounding bound under which a value
	// counts as an exact zero.
	zeroTolFactor = 8.0

	// edgeSlack widens each piece by this fraction of its width when
	// collecting analytic roots, so a root sitting on a knot is not lost to
	// rounding on both sides.
	edgeSlack = 1e-9

	// mergeRel is the relative distance (to the knot span) under which two
	// roots are reported once.
	mergeRel = 1e-10

	maxBisect = 200
)

// Roots returns every x in the knot range with S(x) = level, ascending.
//
// Implementation:
//   - Stage 1: Split each piece at its stationary points, so S - level is
//     monotone on every sub-interval.
//   - Stage 2: Report sub-interval ends whose value is within rounding of 0
//     (knots hit exactly and tangent crossings), bisect every sub-interval
//     whose ends have strictly opposite signs.
//   - Stage 3: Sort and merge roots closer than mergeRel·span.
//
// A piece that is identically equal to level contributes its end knots only.
func (s *Cubic) Roots(level float64) []float64 {
	var roots []float64
	for i := 0; i < len(s.xs)-1; i++ {
		h := s.xs[i+1] - s.xs[i]
		a0 := s.ys[i] - level
		b, c, d := s.b[i], s.c[i], s.d[i]
		f := func(t float64) float64 { return a0 + t*(b+t*(c+t*d)) }
		tol := zeroTolFactor * machEps * (math.Abs(s.ys[i]) + math.Abs(level) +
			math.Abs(b)*h + math.Abs(c)*h*h + math.Abs(d)*h*h*h)

		cuts := []float64{0}
		for _, t := range quadRoots(3*d, 2*c, b) {
			if t > 0 && t < h {
				cuts = append(cuts, t)
			}
		}
		cuts = append(cuts, h)

		for k := 0; k+1 < len(cuts); k++ {
			t0, t1 := cuts[k], cuts[k+1]
			f0, f1 := f(t0), f(t1)
			z0, z1 := math.Abs(f0) <= tol, math.Abs(f1) <= tol
			if z0 {
				roots = append(roots, s.xs[i]+t0)
			}
			if z1 {
				roots = append(roots, s.xs[i]+t1)
			}
			if !z0 && !z1 && (f0 < 0) != (f1 < 0) {
				roots = append(roots, s.xs[i]+bisect(f, t0, t1, f0))
			}
		}
	}

	return s.merge(roots)
}

// StationaryPoints returns every x in the knot range with S′(x) = 0, ascending.
// Pieces with identically zero slope contribute nothing.
func (s *Cubic) StationaryPoints() []float64 {
	var pts []float64
	lo, hi := s.Domain()
	for i := 0; i < len(s.xs)-1; i++ {
		h := s.xs[i+1] - s.xs[i]
		slack := edgeSlack * h
		for _, t := range quadRoots(3*s.d[i], 2*s.c[i], s.b[i]) {
			if t < -slack || t > h+slack {
				continue
			}
			x := math.Min(math.Max(s.xs[i]+t, lo), hi)
			pts = append(pts, x)
		}
	}

	return s.merge(pts)
}

// merge sorts xs and drops entries closer than mergeRel·span to their predecessor.
func (s *Cubic) merge(xs []float64) []float64 {
	if len(xs) < 2 {
		return xs
	}
	sort.Float64s(xs)
	lo, hi := s.Domain()
	tol := mergeRel * (hi - lo)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x-out[len(out)-1] > tol {
			out = append(out, x)
		}
	}

	return out
}

// bisect refines a sign change of f on [lo, hi]; flo is f(lo).
func bisect(f func(float64) float64, lo, hi, flo float64) float64 {
	for it := 0; it < maxBisect; it++ {
		mid := 0.5 * (lo + hi)
		if mid <= lo || mid >= hi {
			break
		}
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi)
}

// quadRoots returns the real roots of a·t² + b·t + c (a double root once).
// Degenerate inputs fall back to the linear case; a constant has no isolated roots.
func quadRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}
	// Numerically stable pair: q/a and c/q.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	r1 := q / a
	if q == 0 {
		return []float64{r1}
	}
	r2 := c / q
	if r1 > r2 {
		r1, r2 = r2, r1
	}

	return []float64{r1, r2}
}
