// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"math"
)

// MaxGridPoints bounds the size of a generated grid.
const MaxGridPoints = 1 << 20

// Arange returns lo, lo+step, lo+2·step, ... strictly below hi.
//
// The point count is ceil((hi-lo)/step), so Arange(300, 800, 10) yields 50
// temperatures from 300 to 790. Each point is computed as lo + i·step to
// avoid accumulating rounding.
//
// Errors:
//   - ErrInvalidRange for non-finite bounds, step <= 0, hi <= lo, or more
//     than MaxGridPoints points.
func Arange(lo, hi, step float64) ([]float64, error) {
	for _, v := range []float64{lo, hi, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("sweep.Arange(%g, %g, %g): %w", lo, hi, step, ErrInvalidRange)
		}
	}
	if step <= 0 || hi <= lo {
		return nil, fmt.Errorf("sweep.Arange(%g, %g, %g): %w", lo, hi, step, ErrInvalidRange)
	}
	n := math.Ceil((hi - lo) / step)
	if n > MaxGridPoints {
		return nil, fmt.Errorf("sweep.Arange(%g, %g, %g): %w: %v points", lo, hi, step, ErrInvalidRange, n)
	}

	out := make([]float64, int(n))
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out, nil
}
