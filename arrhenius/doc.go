// SPDX-License-Identifier: MIT

// Package arrhenius extracts apparent activation energies and Arrhenius
// prefactors from a rate series ln k(β).
//
// An exact cubic is fitted through the (β, ln k) points and, at any β,
//
//	E_act(β)     = -d ln k / dβ
//	prefactor(β) = k(β) · exp(β · E_act(β))
//
// so that k(β) = prefactor · exp(-β·E_act) holds locally. A cubic fit needs
// MinPoints samples; callers holding fewer simply skip the analysis.
package arrhenius
