// SPDX-License-Identifier: MIT

// Package transmission computes semiclassical (WKB) transmission
// coefficients through a symmetric barrier.
//
// For a particle of mass m probing the barrier at position z, with energy
// E = U(z):
//
//	ln T = -2·sqrt(2m) · ∫ sqrt(U(ζ) - E) dζ    over [z1, z2]
//
// where z1, z2 are turning points. Which turning points apply depends on the
// barrier shape and the probe energy (see Topology); the choice is made on
// every call by SelectTopology, so a *Model carries no per-call state and is
// safe for concurrent use.
//
// Under the double-peak topology the particle crosses one of the two peaks
// and is reflected with probability 1/2, so ln 0.5 is added, and a probe at
// the barrier top yields T = 0.5 exactly.
package transmission
