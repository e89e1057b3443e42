// SPDX-License-Identifier: MIT

package barrier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/af0liveira/qtp/barrier"
	"github.com/af0liveira/qtp/spline"
)

// Fixtures shared by the barrier tests.
var (
	// singleZs/singleUs: one peak at the origin.
	singleZs = []float64{-2, -1, 0, 1, 2}
	singleUs = []float64{0, 0.3, 0.5, 0.3, 0}

	// doubleZs/doubleUs: a local minimum at the origin between two peaks.
	doubleZs = []float64{-3, -2, -1, 0, 1, 2, 3}
	doubleUs = []float64{0, 0.4, 0.6, 0.3, 0.6, 0.4, 0}
)

// MustBarrier builds a barrier or fails the test immediately.
func MustBarrier(t testing.TB, zs, us []float64) *barrier.Model {
	t.Helper()
	b, err := barrier.New(zs, us)
	require.NoError(t, err)

	return b
}

func grid(lo, hi float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n)
	}

	return out
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		zs    []float64
		us    []float64
		cause error
	}{
		{"length-mismatch", []float64{0, 1, 2}, []float64{0, 1}, nil},
		{"empty", nil, nil, nil},
		{"nan-energy", []float64{0, 1, 2}, []float64{0, math.NaN(), 1}, nil},
		{"inf-position", []float64{0, math.Inf(-1), 2}, []float64{0, 1, 1}, nil},
		{"too-few-symmetric-points", []float64{0, 1}, []float64{1, 0}, spline.ErrTooFewPoints},
		{"duplicates-collapse", []float64{-1, 1, 1 + 1e-8, -1 - 1e-8}, []float64{0, 0, 0, 0}, spline.ErrTooFewPoints},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := barrier.New(tc.zs, tc.us)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, barrier.ErrConstruction)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

// TestNew_MirrorsOneSidedData builds the full barrier from the right half only.
func TestNew_MirrorsOneSidedData(t *testing.T) {
	b := MustBarrier(t, []float64{2, 0, 1}, []float64{0, 0.5, 0.3})

	zs, us := b.Points()
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, zs)
	assert.InDeltaSlice(t, []float64{0, 0.3, 0.5, 0.3, 0}, us, 1e-15)
}

// TestNew_AveragesFoldedDuplicates checks that points within Epsilon after
// folding collapse into one averaged point and energies are shifted to 0.
func TestNew_AveragesFoldedDuplicates(t *testing.T) {
	zs := []float64{-2, -1, 0, 1 + 4e-7, 2}
	us := []float64{1, 1.4, 1.6, 1.2, 1}
	b := MustBarrier(t, zs, us)

	gz, gu := b.Points()
	require.Len(t, gz, 5)
	assert.InDeltaSlice(t, []float64{-2, -(1 + 2e-7), 0, 1 + 2e-7, 2}, gz, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.3, 0.6, 0.3, 0}, gu, 1e-12)

	// Caller slices are untouched.
	assert.Equal(t, []float64{-2, -1, 0, 1 + 4e-7, 2}, zs)
	assert.Equal(t, []float64{1, 1.4, 1.6, 1.2, 1}, us)
}

// TestSymmetry holds even for lopsided raw input, since only |z| is kept.
func TestSymmetry(t *testing.T) {
	b := MustBarrier(t,
		[]float64{-2.5, -1.1, -0.4, 0, 0.7, 1.6, 2.2},
		[]float64{0.02, 0.21, 0.48, 0.52, 0.4, 0.15, 0.05})

	lo, hi := b.Domain()
	assert.Equal(t, -lo, hi)
	for _, z := range grid(0, hi, 200) {
		assert.InDelta(t, b.Evaluate(z), b.Evaluate(-z), 1e-12, "z=%v", z)
		assert.InDelta(t, b.Derivative(z, 1), -b.Derivative(-z, 1), 1e-12, "z=%v", z)
	}
}

func TestBaseline(t *testing.T) {
	b := MustBarrier(t, doubleZs, []float64{2, 2.4, 2.6, 2.3, 2.6, 2.4, 2})

	zs, us := b.Points()
	minU := math.Inf(1)
	for _, u := range us {
		minU = math.Min(minU, u)
	}
	assert.Equal(t, 0.0, minU)
	for _, z := range zs {
		assert.GreaterOrEqual(t, b.Evaluate(z), -1e-12)
	}
}

func TestBoundaryDecay(t *testing.T) {
	b := MustBarrier(t, singleZs, singleUs)

	for _, z := range []float64{-100, -2.0001, 2.0001, 7, math.Inf(1)} {
		assert.Equal(t, 0.0, b.Evaluate(z), "z=%v", z)
		assert.Equal(t, 0.0, b.Derivative(z, 1), "z=%v", z)
	}
}

func TestLevelCrossings_RoundTrip(t *testing.T) {
	for name, fx := range map[string][2][]float64{
		"single": {singleZs, singleUs},
		"double": {doubleZs, doubleUs},
	} {
		t.Run(name, func(t *testing.T) {
			b := MustBarrier(t, fx[0], fx[1])
			lo, hi := b.Domain()
			for _, z0 := range grid(lo*0.95, hi*0.95, 37) {
				roots := b.LevelCrossings(b.Evaluate(z0))
				require.NotEmpty(t, roots, "z0=%v", z0)
				assert.IsNonDecreasing(t, roots)
				best := math.Inf(1)
				for _, r := range roots {
					best = math.Min(best, math.Abs(math.Abs(r)-math.Abs(z0)))
				}
				assert.Less(t, best, 1e-8, "z0=%v roots=%v", z0, roots)
			}
		})
	}
}

func TestLevelCrossings_Counts(t *testing.T) {
	b := MustBarrier(t, doubleZs, doubleUs)

	assert.Len(t, b.LevelCrossings(0.1), 2, "below the central minimum")
	assert.Len(t, b.LevelCrossings(0.5), 4, "between the minimum and the peaks")
	assert.Empty(t, b.LevelCrossings(1), "above the peaks")
}

// TestIdempotence rebuilds the barrier from identical samples.
func TestIdempotence(t *testing.T) {
	b1 := MustBarrier(t, doubleZs, doubleUs)
	b2 := MustBarrier(t, doubleZs, doubleUs)

	for _, z := range grid(-3.5, 3.5, 71) {
		assert.Equal(t, b1.Evaluate(z), b2.Evaluate(z))
		assert.Equal(t, b1.Derivative(z, 1), b2.Derivative(z, 1))
	}
}
