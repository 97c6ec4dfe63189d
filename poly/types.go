package poly

import (
	"math"
	"math/rand"
)

// Scalar is the coefficient and root domain of this package: real or
// complex double precision.
type Scalar interface {
	float64 | complex128
}

// Library defaults shared by every iterative entry point.
const (
	// DefaultTolerance is the convergence and degeneracy tolerance.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations bounds every iterative solver.
	DefaultMaxIterations = 100
)

// trimThreshold is the squared-magnitude cutoff below which trailing
// coefficients are dropped at construction. Both scalar kinds compare
// |c|² against sqrt(machine epsilon) so their trimming agrees.
var trimThreshold = math.Sqrt(math.Nextafter(1, 2) - 1)

// SolveOptions configures the iterative solvers. Construct via
// DefaultSolveOptions and the With* functional options.
type SolveOptions struct {
	// Tolerance is the convergence tolerance. Must be positive;
	// validated at solver entry.
	Tolerance float64

	// MaxIterations bounds the iteration count. Must be ≥ 1;
	// validated at solver entry.
	MaxIterations int

	// Guess is Laguerre's starting point.
	Guess complex128

	// Rand drives Laguerre's stagnation-escape step. Nil selects a
	// deterministic fixed-seed generator.
	Rand *rand.Rand
}

// DefaultSolveOptions returns the baseline solver configuration.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// SolveOption mutates SolveOptions.
type SolveOption func(*SolveOptions)

// WithTolerance sets the convergence tolerance. Non-positive values
// are rejected at solver entry with KindBadInput.
func WithTolerance(tolerance float64) SolveOption {
	return func(o *SolveOptions) { o.Tolerance = tolerance }
}

// WithMaxIterations sets the iteration bound. Values below 1 are
// rejected at solver entry with KindBadInput.
func WithMaxIterations(n int) SolveOption {
	return func(o *SolveOptions) { o.MaxIterations = n }
}

// WithGuess sets Laguerre's starting point.
func WithGuess(guess complex128) SolveOption {
	return func(o *SolveOptions) { o.Guess = guess }
}

// WithRand injects the random source for Laguerre's escape step.
// Panics if rng is nil; use the default by omitting the option.
func WithRand(rng *rand.Rand) SolveOption {
	if rng == nil {
		panic("poly: WithRand(nil)")
	}
	return func(o *SolveOptions) { o.Rand = rng }
}

// defaultRNGSeed is the fixed seed behind the default escape-step
// generator. Arbitrary but stable, so default runs are reproducible.
const defaultRNGSeed int64 = 1

// rng returns the configured random source, falling back to the
// deterministic default stream.
func (o *SolveOptions) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewSource(defaultRNGSeed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with a SplitMix64-style finalizer, giving uncorrelated
// substreams for concurrent solves.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic stream for worker i.
// base==nil falls back to the default seed as parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
