// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/af0liveira/qtp/matrix"
)

// BenchmarkSolve_Tridiagonal solves the diagonally dominant system shape a
// spline fit produces.
func BenchmarkSolve_Tridiagonal(b *testing.B) {
	const n = 64
	a, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		_ = a.Set(i, i, 4)
		if i > 0 {
			_ = a.Set(i, i-1, 1)
		}
		if i < n-1 {
			_ = a.Set(i, i+1, 1)
		}
		rhs[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Solve(a, rhs)
	}
}
