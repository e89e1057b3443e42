// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const opIntegrate = "numeric.Integrate"

// Result is the outcome of an adaptive integration.
type Result struct {
	Value  float64 // integral estimate
	AbsErr float64 // summed |fine - coarse| over all panels
	Panels int     // number of panels in the final partition
	Capped bool    // true when the panel limit stopped refinement early
}

// panel is one sub-interval of the adaptive partition.
type panel struct {
	a, b  float64
	value float64
	err   float64
}

// legendreRule holds Gauss-Legendre nodes and weights on [-1, 1].
type legendreRule struct {
	x, w []float64
}

func newLegendreRule(n int) legendreRule {
	r := legendreRule{x: make([]float64, n), w: make([]float64, n)}
	quad.Legendre{}.FixedLocations(r.x, r.w, -1, 1)

	return r
}

// apply integrates f over [a, b] with the rule mapped affinely from [-1, 1].
func (r legendreRule) apply(f func(float64) float64, a, b float64) float64 {
	half := 0.5 * (b - a)
	mid := 0.5 * (a + b)
	var sum float64
	for i, x := range r.x {
		sum += r.w[i] * f(mid+half*x)
	}

	return half * sum
}

// Integrate computes ∫_a^b f(x) dx adaptively.
//
// Implementation:
//   - Stage 1: Validate bounds; a == b gives 0, a > b flips the sign.
//   - Stage 2: Estimate each panel with Gauss-Legendre rules of order n and 2n;
//     the fine value is kept and |fine - coarse| is the panel error.
//   - Stage 3: While the summed error exceeds max(AbsTol, RelTol·|I|) and fewer
//     than Limit panels exist, bisect the worst panel.
//
// Behavior highlights:
//   - Hitting the panel limit is not an error: the best estimate is returned
//     with Result.Capped set, as quadpack does with a warning.
//   - Endpoint singularities of the integrable kind (e.g. √(x-a)) converge
//     because the rules never evaluate f at the panel ends.
//
// Errors:
//   - ErrBadBounds for NaN/Inf limits.
//   - ErrNonFinite when the estimate is NaN or ±Inf.
func Integrate(f func(float64) float64, a, b float64, opts ...Option) (Result, error) {
	if !IsFinite(a) || !IsFinite(b) {
		return Result{}, fmt.Errorf("%s: [%v, %v]: %w", opIntegrate, a, b, ErrBadBounds)
	}
	if a == b {
		return Result{Panels: 0}, nil
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}

	o := gatherOptions(opts...)
	coarse := newLegendreRule(o.Order)
	fine := newLegendreRule(2 * o.Order)

	eval := func(lo, hi float64) panel {
		fv := fine.apply(f, lo, hi)
		cv := coarse.apply(f, lo, hi)

		return panel{a: lo, b: hi, value: fv, err: math.Abs(fv - cv)}
	}

	panels := []panel{eval(a, b)}
	var (
		total, totalErr float64
		worst           int
		capped          bool
	)
	for {
		total, totalErr, worst = 0, 0, 0
		for i, p := range panels {
			total += p.value
			totalErr += p.err
			if p.err > panels[worst].err {
				worst = i
			}
		}
		if !IsFinite(total) {
			return Result{}, fmt.Errorf("%s: [%v, %v]: %w", opIntegrate, a, b, ErrNonFinite)
		}
		if totalErr <= math.Max(o.AbsTol, o.RelTol*math.Abs(total)) {
			break
		}
		if len(panels) >= o.Limit {
			capped = true
			break
		}

		// Bisect the worst panel in place; the right half is appended.
		p := panels[worst]
		mid := 0.5 * (p.a + p.b)
		if mid <= p.a || mid >= p.b {
			// Panel is as narrow as float64 allows.
			capped = true
			break
		}
		panels[worst] = eval(p.a, mid)
		panels = append(panels, eval(mid, p.b))
	}

	return Result{
		Value:  sign * total,
		AbsErr: totalErr,
		Panels: len(panels),
		Capped: capped,
	}, nil
}
