package deriv

import (
	"errors"
	"math"
)

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Formula is a finite-difference stencil: it evaluates f around x with
// step h and returns the approximate derivative. Formulas never check
// their inputs; validation happens in Derivative.
type Formula func(f Func, x, h float64) float64

// Default and limit step sizes. StepSize is cbrt(machine epsilon),
// MinStepSize is sqrt(machine epsilon); below the latter the
// subtraction in any stencil loses all significant digits.
var (
	StepSize    = math.Cbrt(math.Nextafter(1, 2) - 1)
	MinStepSize = math.Sqrt(math.Nextafter(1, 2) - 1)
)

// Sentinel errors returned by Derivative.
var (
	// ErrNilFunction is returned when f is nil.
	ErrNilFunction = errors.New("deriv: nil function")

	// ErrStepTooSmall is returned when the requested step size is
	// below MinStepSize.
	ErrStepTooSmall = errors.New("deriv: step size below sqrt(machine epsilon)")
)

// ErrorData is attached as the numerr payload when a stencil produces
// a non-finite value. It snapshots the evaluation point, the effective
// step, the function value, and the offending derivative estimate.
type ErrorData struct {
	X    float64
	Step float64
	F    float64
	DF   float64
}

// Options configures Derivative. Construct via DefaultOptions and the
// With* functional options.
type Options struct {
	// Formula is the finite-difference stencil to apply.
	Formula Formula

	// Step is the base step size, scaled by |x| for large arguments.
	Step float64
}

// DefaultOptions returns the baseline configuration:
// Richardson-extrapolated central first derivative, step cbrt(eps).
func DefaultOptions() Options {
	return Options{
		Formula: Order1CentralRichardson,
		Step:    StepSize,
	}
}

// Option mutates Options. Invalid static arguments panic immediately;
// data-dependent validation happens in Derivative.
type Option func(*Options)

// WithFormula selects the finite-difference stencil.
// Panics if formula is nil.
func WithFormula(formula Formula) Option {
	if formula == nil {
		panic("deriv: WithFormula(nil)")
	}
	return func(o *Options) { o.Formula = formula }
}

// WithStepSize sets the base step size.
// Panics if step is not a positive finite number; steps below
// MinStepSize are rejected later by Derivative with ErrStepTooSmall.
func WithStepSize(step float64) Option {
	if !(step > 0) || math.IsInf(step, 0) {
		panic("deriv: WithStepSize requires a positive finite step")
	}
	return func(o *Options) { o.Step = step }
}
