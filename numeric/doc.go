// SPDX-License-Identifier: MIT

// Package numeric holds the numerical policy shared by every model in qtp:
// the comparison tolerances and the adaptive quadrature used for the
// semiclassical and thermal integrals.
//
// Tolerances:
//
//	Epsilon        1e-6   "energy equal" and "position equal" everywhere
//	Floor          1e-15  near-zero energy marking the low flux boundary
//	LevelDecimals  8      rounding applied to energies before crossing searches
//
// Crossing detection in the barrier decides topology and integration bounds in
// the transmission and flux models, so all three read the same constants from
// here instead of keeping private copies.
//
// Quadrature:
//
//	res, err := numeric.Integrate(f, a, b, numeric.WithLimit(500))
//
// Each panel is integrated with Gauss-Legendre rules of order n and 2n
// (gonum.org/v1/gonum/integrate/quad); the panel with the largest disagreement
// is bisected until the summed error estimate meets the tolerance or the panel
// limit is reached.
package numeric
