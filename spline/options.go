// SPDX-License-Identifier: MIT

package spline

// Extrapolation selects what a Cubic returns outside its knot range.
//
//   - Extrapolate: continue the first/last polynomial piece.
//   - Zeros: value and every derivative are 0 outside [x_0, x_{n-1}].
type Extrapolation int

const (
	// Extrapolate continues the end pieces beyond the knot range.
	Extrapolate Extrapolation = iota

	// Zeros makes the interpolant vanish beyond the knot range.
	Zeros
)

// String implements fmt.Stringer.
func (e Extrapolation) String() string {
	switch e {
	case Extrapolate:
		return "extrapolate"
	case Zeros:
		return "zeros"
	default:
		return "unknown"
	}
}

// DefaultExtrapolation is used when no option overrides it.
const DefaultExtrapolation = Extrapolate

// Option configures New.
type Option func(*config)

type config struct {
	ext Extrapolation
}

// WithExtrapolation sets the out-of-range policy.
func WithExtrapolation(e Extrapolation) Option {
	return func(c *config) { c.ext = e }
}

func newConfig(opts ...Option) config {
	c := config{ext: DefaultExtrapolation}
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}

	return c
}
