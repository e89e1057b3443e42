// SPDX-License-Identifier: MIT

// Package qtp estimates quantum tunneling transport properties of a particle
// crossing a symmetric one-dimensional potential-energy barrier, such as an
// atom passing through a 2D material sheet.
//
// What does it compute?
//
//	From sampled energies U(z) and a particle mass:
//		• transmission coefficients T(E) in the WKB approximation
//		• classical and tunneling flux at inverse temperature β
//		• rate constants k(T) and apparent Arrhenius parameters
//
// Under the hood, everything is organized in small packages, bottom-up:
//
//	numeric/       shared tolerances and adaptive Gauss–Legendre quadrature
//	matrix/        dense matrices and pivoted LU solves
//	spline/        exact cubic interpolants, roots and stationary points
//	barrier/       symmetrized barrier U(z), level crossings, maximum
//	transmission/  WKB transmission with per-probe topology selection
//	flux/          classical + tunneling flux
//	arrhenius/     activation energies and prefactors from ln k(β)
//	units/         CODATA conversions to atomic units
//	sweep/         the run driver: profile, temperature sweep, activation
//	cmd/qtp/       the command-line tool
//
// Quick example:
//
//	b, _ := barrier.New(zs, us)              // bohr, hartree
//	t, _ := transmission.New(b, 1836.15)     // electron masses
//	f, _ := flux.New(t)
//	jc, jq, jtot, err := f.Evaluate(1052.58) // β at 300 K
//
// Every model is immutable after construction and safe for concurrent use.
//
//	go install github.com/af0liveira/qtp/cmd/qtp@latest
package qtp
