// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// interpolation layer of qtp.
//
// What & Why:
//
//	Fitting an exact cubic interpolant reduces to one square linear system per
//	fit (unknown second derivatives at the knots). The system is small (one row
//	per sampled point) and solved once, so a plain row-major Dense with a
//	pivoted LU factorization is all that is needed.
//
// The package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set.
//   - LU: Doolittle factorization with partial (row) pivoting.
//   - Solve: A·x = b through LU and forward/backward substitution.
//
// Errors are package-level sentinels (see errors.go) wrapped with an operation
// tag; match them with errors.Is.
//
// Complexity:
//
//	NewDense O(n²) memory; LU O(n³) time; Solve O(n³) for the factorization
//	plus O(n²) per right-hand side.
package matrix
