// SPDX-License-Identifier: MIT

// Package flux computes the thermal particle flux across a barrier, split
// into a classical over-the-top part and a tunneling correction:
//
//	j_c(β) = exp(-β·U*) / sqrt(2π·m·β)
//	j_q(β) = sqrt(β / (2π·m)) · ∫ T(U(ζ))·exp(-β·U(ζ))·U′(ζ) dζ   over [z_low, z*]
//
// (z*, U*) is the barrier maximum and z_low the first position at which the
// barrier rises above numeric.Floor. Converting a flux to a rate constant
// (k = j·RateFactor) is left to the caller.
package flux
