package optimize

import (
	"fmt"
	"math"
)

// Func is a real-valued objective or derivative.
type Func func(float64) float64

// Mode selects the direction of the search.
type Mode int

const (
	// Minimize searches for a local minimum. The zero value.
	Minimize Mode = iota

	// Maximize searches for a local maximum.
	Maximize
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Default knobs shared by the optimizers.
const (
	// DefaultEpsilon is the convergence threshold: bracket width for
	// GoldenSection, gradient magnitude for GradientDescent.
	DefaultEpsilon = 1e-6

	// DefaultMaxIterations caps the number of passes.
	DefaultMaxIterations = 100

	// DefaultLearningRate is the fixed step factor of GradientDescent.
	DefaultLearningRate = 0.01
)

// Result reports the outcome of an optimization run.
type Result struct {
	X          float64 // located extremum estimate
	Value      float64 // objective value at X
	Iterations int     // passes performed
	Converged  bool    // true when the stop criterion fired
}

// Options bundles the tunable parameters of the optimizers.
type Options struct {
	// Epsilon is the convergence threshold. Must be positive.
	Epsilon float64

	// MaxIterations caps the number of passes. Must be positive.
	MaxIterations int

	// Mode selects minimization or maximization.
	Mode Mode

	// LearningRate is the fixed step factor of GradientDescent, ignored
	// by GoldenSection. Must be positive.
	LearningRate float64
}

// DefaultOptions returns the options used when no Option overrides are
// supplied.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Mode:          Minimize,
		LearningRate:  DefaultLearningRate,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon overrides the convergence threshold.
// Panics if eps is not a positive finite number.
func WithEpsilon(eps float64) Option {
	if eps <= 0 || math.IsInf(eps, 0) || math.IsNaN(eps) {
		panic(fmt.Sprintf("optimize: epsilon must be positive and finite, got %v", eps))
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations overrides the pass cap.
// Panics if n is not positive.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("optimize: max iterations must be positive, got %d", n))
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithMode selects minimization or maximization.
// Panics on an unknown mode.
func WithMode(m Mode) Option {
	if m != Minimize && m != Maximize {
		panic(fmt.Sprintf("optimize: unknown mode %d", int(m)))
	}
	return func(o *Options) { o.Mode = m }
}

// WithLearningRate overrides the GradientDescent step factor.
// Panics if rate is not a positive finite number.
func WithLearningRate(rate float64) Option {
	if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		panic(fmt.Sprintf("optimize: learning rate must be positive and finite, got %v", rate))
	}
	return func(o *Options) { o.LearningRate = rate }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
