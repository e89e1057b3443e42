// SPDX-License-Identifier: MIT

// Package barrier models a symmetric one-dimensional potential-energy
// barrier U(z) built from sampled (position, energy) pairs.
//
// What happens at construction?
//
//	Positions are folded to |z|, points closer than numeric.Epsilon are
//	averaged, every point away from the origin is mirrored to -z, and the
//	energies are shifted so the lowest sample is exactly 0. An exact cubic
//	interpolant through the symmetric points is the barrier; outside the
//	sampled range U and all its derivatives are 0.
//
// Key features:
//   - Evaluate / Derivative: U(z) and U⁽ⁿ⁾(z).
//   - LevelCrossings(u0): every z with U(z) = u0, ascending.
//   - Maximum(): the highest local maximum (z*, U*), computed once.
//
// Usage:
//
//	b, err := barrier.New(zs, us)
//	if err != nil {
//	  // errors.Is(err, barrier.ErrConstruction)
//	}
//	zStar, uStar, err := b.Maximum()
//	turning := b.LevelCrossings(0.1)
//
// A *Model is immutable after New and safe for concurrent readers,
// including the first concurrent calls to Maximum.
package barrier
