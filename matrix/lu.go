// SPDX-License-Identifier: MIT
// Package matrix provides the LU kernel and the linear solver built on it.
//
// Purpose:
//   - Factor a square system once (P·A = L·U) and reuse it for substitution.
//   - Keep loops in fixed i→j order so identical inputs give identical outputs.
//
// Notes:
//   - Partial pivoting picks the largest |a[k,i]| in column i (first one on ties).
//     Spline systems put a not-a-knot row first whose leading entry can be
//     small relative to the row below it; pivoting keeps those well conditioned.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opLU    = "LU"
	opSolve = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU computes the Doolittle factorization P·A = L·U with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy it into a working Dense.
//   - Stage 2: For each column i pick the pivot row, swap, then eliminate below it.
//     Multipliers are stored in place under the diagonal (L has a unit diagonal
//     that is not stored); U occupies the diagonal and above.
//
// Returns:
//   - *Dense: packed L\U factors.
//   - []int : row permutation; perm[i] is the original row now at position i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (whole pivot column is zero).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	var lu *Dense
	if d, ok := m.(*Dense); ok {
		lu = d.Clone().(*Dense)
	} else {
		raw, err := NewDense(n, n)
		if err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
		var v float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opLU, err)
				}
				raw.data[i*n+j] = v
			}
		}
		lu = raw
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k  int
		p        int
		best, av float64
		pivot    float64
		factor   float64
		a        = lu.data
	)
	for i = 0; i < n; i++ {
		// Pivot search in column i (rows i..n-1).
		p, best = i, math.Abs(a[i*n+i])
		for k = i + 1; k < n; k++ {
			if av = math.Abs(a[k*n+i]); av > best {
				p, best = k, av
			}
		}
		if best == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != i {
			for j = 0; j < n; j++ {
				a[i*n+j], a[p*n+j] = a[p*n+j], a[i*n+j]
			}
			perm[i], perm[p] = perm[p], perm[i]
		}

		// Eliminate below the pivot, storing multipliers in the L part.
		pivot = a[i*n+i]
		for k = i + 1; k < n; k++ {
			factor = a[k*n+i] / pivot
			a[k*n+i] = factor
			if factor == 0 {
				continue
			}
			for j = i + 1; j < n; j++ {
				a[k*n+j] -= factor * a[i*n+j]
			}
		}
	}

	return lu, perm, nil
}

// Solve returns x such that A·x = b.
//
// Implementation:
//   - Stage 1: Validate b length against A; factor A with LU.
//   - Stage 2: Forward substitution L·y = P·b, then backward substitution U·x = y.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for malformed inputs.
//   - ErrNaNInf when b contains non-finite values.
//   - ErrSingular from the factorization.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opSolve, ErrNaNInf)
		}
	}

	lu, perm, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := lu.r
	var (
		i, k int
		sum  float64
		y    = make([]float64, n)
		x    = make([]float64, n)
		d    = lu.data
	)
	// Forward substitution with the unit-diagonal L.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += d[i*n+k] * y[k]
		}
		y[i] = b[perm[i]] - sum
	}
	// Backward substitution with U.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += d[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / d[i*n+i]
	}

	return x, nil
}
