package roots

import (
	"errors"
	"math"
	"math/cmplx"
)

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Scalar is the domain of the polishing solvers: real or complex
// double precision.
type Scalar interface {
	float64 | complex128
}

// Library defaults for the driver loops.
const (
	// DefaultEpsilon is the convergence tolerance.
	DefaultEpsilon = 1e-6

	// DefaultMaxIterations bounds every driver loop.
	DefaultMaxIterations = 100
)

// machineEpsilon is the near-zero threshold for the polishing
// solvers' division guards.
var machineEpsilon = math.Nextafter(1, 2) - 1

// Sentinel errors.
var (
	// ErrNilFunction is returned by constructors given a nil function.
	ErrNilFunction = errors.New("roots: nil function")

	// ErrEqualBounds is returned by constructors given coinciding
	// bounds. Reversed bounds are swapped, not rejected.
	ErrEqualBounds = errors.New("roots: bounds must not be equal")

	// ErrNilSolver is returned by drivers given a nil solver.
	ErrNilSolver = errors.New("roots: nil solver")

	// ErrVanishingDerivative is reported by Steffensen when its
	// Newton bootstrap hits a near-zero derivative.
	ErrVanishingDerivative = errors.New("roots: derivative vanishes at the current guess")

	// ErrNoBracket is returned by Search when no sign change is found
	// within the iteration budget.
	ErrNoBracket = errors.New("roots: no sign change found within the iteration budget")
)

// Bracket is the state of a bracketing solver: the current bounds and
// the root estimate between them.
type Bracket struct {
	Lo float64
	X  float64
	Hi float64
}

// Width is the current interval width, Hi − Lo.
func (b Bracket) Width() float64 { return b.Hi - b.Lo }

// Options configures the driver loops. Construct via DefaultOptions
// and the With* functional options.
type Options struct {
	// Epsilon is the convergence tolerance.
	Epsilon float64

	// MaxIterations bounds the driver loop.
	MaxIterations int
}

// DefaultOptions returns the baseline driver configuration.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon sets the convergence tolerance.
// Panics unless eps is a positive finite number.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("roots: WithEpsilon requires a positive finite epsilon")
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations sets the iteration budget.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("roots: WithMaxIterations requires at least 1 iteration")
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

// modulus is |v| for both scalar kinds.
func modulus[T Scalar](v T) float64 {
	switch s := any(v).(type) {
	case float64:
		return math.Abs(s)
	case complex128:
		return cmplx.Abs(s)
	}
	return 0
}

// fromFloat lifts a real value into the scalar kind T.
func fromFloat[T Scalar](v float64) T {
	var zero T
	if _, real64 := any(zero).(float64); real64 {
		return any(v).(T)
	}
	return any(complex(v, 0)).(T)
}
