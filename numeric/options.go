// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

// Quadrature defaults. The tolerances follow the QUADPACK defaults
// (about sqrt of machine epsilon); 500 panels bound the work per integral.
const (
	DefaultAbsTol = 1.49e-8
	DefaultRelTol = 1.49e-8
	DefaultLimit  = 500
	DefaultOrder  = 10
)

const (
	panicTolInvalid   = "numeric: tolerance must be finite and non-negative"
	panicLimitInvalid = "numeric: panel limit must be positive"
	panicOrderInvalid = "numeric: rule order must be positive"
)

// Option configures Integrate. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options holds the resolved quadrature settings.
type Options struct {
	AbsTol float64 // absolute error target
	RelTol float64 // relative error target
	Limit  int     // maximum number of panels
	Order  int     // coarse Gauss-Legendre order; the fine rule uses twice as many nodes
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		AbsTol: DefaultAbsTol,
		RelTol: DefaultRelTol,
		Limit:  DefaultLimit,
		Order:  DefaultOrder,
	}
}

// WithAbsTol sets the absolute error target.
func WithAbsTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("%s: %v", panicTolInvalid, tol))
	}

	return func(o *Options) { o.AbsTol = tol }
}

// WithRelTol sets the relative error target.
func WithRelTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("%s: %v", panicTolInvalid, tol))
	}

	return func(o *Options) { o.RelTol = tol }
}

// WithLimit bounds the number of panels.
func WithLimit(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("%s: %d", panicLimitInvalid, n))
	}

	return func(o *Options) { o.Limit = n }
}

// WithOrder sets the coarse rule order.
func WithOrder(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("%s: %d", panicOrderInvalid, n))
	}

	return func(o *Options) { o.Order = n }
}

// gatherOptions applies user options in order over the defaults.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
