package integrate

import (
	"fmt"
	"math"
)

// Func is a real-valued integrand.
type Func func(float64) float64

// Default knobs for the refinement driver.
const (
	// DefaultTolerance is the absolute gap between successive estimates
	// below which the driver declares convergence.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the number of refinement passes.
	DefaultMaxIterations = 25
)

// ErrorData is attached as the payload of non-convergence and non-finite
// failures.
type ErrorData struct {
	Lo         float64 // lower bound of the interval
	Hi         float64 // upper bound of the interval
	Estimate   float64 // last quadrature estimate
	Iterations int     // refinement passes performed
}

// Options bundles the tunable parameters of the quadrature driver.
type Options struct {
	// Tolerance is the absolute convergence threshold on the gap
	// between successive estimates. Must be positive.
	Tolerance float64

	// MaxIterations caps the number of refinement passes. Must be
	// positive.
	MaxIterations int
}

// DefaultOptions returns the options used when no Option overrides are
// supplied.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance overrides the convergence threshold.
// Panics if tol is not a positive finite number.
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsInf(tol, 0) || math.IsNaN(tol) {
		panic(fmt.Sprintf("integrate: tolerance must be positive and finite, got %v", tol))
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations overrides the refinement pass cap.
// Panics if n is not positive.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("integrate: max iterations must be positive, got %d", n))
	}
	return func(o *Options) { o.MaxIterations = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
