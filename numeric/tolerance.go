// SPDX-License-Identifier: MIT

package numeric

import "math"

const (
	// Epsilon is the tolerance for "energy equal" and "position equal" comparisons.
	Epsilon = 1e-6

	// Floor is the near-zero energy used to find the low-energy flux boundary.
	// It matches the decimal resolution of a float64 (15 significant digits).
	Floor = 1e-15

	// LevelDecimals is the number of decimals kept when an energy is used as the
	// target of a level-crossing search.
	LevelDecimals = 8
)

// RoundTo rounds x to the given number of decimals, ties to even.
func RoundTo(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow10(decimals)

	return math.RoundToEven(x*p) / p
}

// Equal reports whether a and b differ by less than Epsilon.
func Equal(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// IsZero reports whether |x| < Epsilon.
func IsZero(x float64) bool { return math.Abs(x) < Epsilon }

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
