// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/af0liveira/qtp/matrix"
)

// TestSolve_Systems checks A·x = b on a few well-posed systems, including one
// whose leading entry is zero and therefore needs a row swap.
func TestSolve_Systems(t *testing.T) {
	cases := []struct {
		name string
		n    int
		a    []float64
		x    []float64
	}{
		{"identity", 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, []float64{1, -2, 3}},
		{"zero-leading-pivot", 2, []float64{0, 1, 1, 0}, []float64{5, 7}},
		{"tridiagonal", 4, []float64{
			4, 1, 0, 0,
			1, 4, 1, 0,
			0, 1, 4, 1,
			0, 0, 1, 4,
		}, []float64{0.5, -1, 2, 0.25}},
		{"not-a-knot-row", 4, []float64{
			1, -2, 1, 0,
			1, 4, 1, 0,
			0, 1, 4, 1,
			0, 1, -2, 1,
		}, []float64{1, 2, 3, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewFilledDense(t, tc.n, tc.n, tc.a)
			b := matVec(tc.a, tc.n, tc.x)

			got, err := matrix.Solve(a, b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.x, got, 1e-12)

			// The generic path must agree with the *Dense fast path.
			got2, err := matrix.Solve(hide{a}, b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, got, got2, 0)
		})
	}
}

// TestSolve_DoesNotMutateInput ensures the factorization works on a copy.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	vals := []float64{0, 2, 3, 1}
	a := NewFilledDense(t, 2, 2, vals)
	_, err := matrix.Solve(a, []float64{1, 1})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, vals[i*2+j], MustAt(t, a, i, j))
		}
	}
}

// TestSolve_Errors covers the sentinel surface.
func TestSolve_Errors(t *testing.T) {
	singular := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4})
	_, err := matrix.Solve(singular, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrSingular)

	rect := MustDense(t, 2, 3)
	_, err = matrix.Solve(rect, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sq := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 1})
	_, err = matrix.Solve(sq, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(sq, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestLU_Permutation checks that the packed factors reproduce P·A.
func TestLU_Permutation(t *testing.T) {
	vals := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	lu, perm, err := matrix.LU(NewFilledDense(t, 3, 3, vals))
	require.NoError(t, err)
	assert.Equal(t, 2, perm[0], "largest first-column entry must be pivoted to the top")

	n := 3
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k <= i && k <= j; k++ {
				l := 1.0
				if k < i {
					l = MustAt(t, lu, i, k)
				}
				sum += l * MustAt(t, lu, k, j)
			}
			assert.InDelta(t, vals[perm[i]*n+j], sum, 1e-12, "(P·A)[%d,%d]", i, j)
		}
	}
}
