package roots

import "math"

// PolishFunc is a function over the scalar kind T, used as objective
// or derivative by the polishing solvers.
type PolishFunc[T Scalar] func(T) T

// PolishingSolver is one step of a guess-refining method. Iterate
// moves the current guess; Err reports a hard failure from the most
// recent step (only Steffensen's bootstrap produces one).
type PolishingSolver[T Scalar] interface {
	// Current returns the guess after the most recent iteration.
	Current() T

	// Iterate performs one refinement step.
	Iterate()

	// Err reports a hard failure from the most recent Iterate, or
	// nil.
	Err() error
}

// surrogateStep is the base step of the fallback numerical derivative,
// cbrt(machine epsilon).
var surrogateStep = math.Cbrt(machineEpsilon)

// numericDerivative is the derivative surrogate substituted when a
// polishing constructor receives a nil derivative: a
// Richardson-extrapolated central difference with the step scaled by
// the magnitude of the evaluation point.
func numericDerivative[T Scalar](f PolishFunc[T]) PolishFunc[T] {
	return func(x T) T {
		hf := surrogateStep
		if scaled := surrogateStep * modulus(x); scaled > hf {
			hf = scaled
		}
		h := fromFloat[T](hf)
		return (8*(f(x+h)-f(x-h)) - (f(x+2*h) - f(x-2*h))) / (12 * h)
	}
}

// polishBase carries the state shared by the polishing methods.
type polishBase[T Scalar] struct {
	f     PolishFunc[T]
	df    PolishFunc[T]
	guess T
}

func newPolishBase[T Scalar](f, df PolishFunc[T], guess T) (polishBase[T], error) {
	if f == nil {
		return polishBase[T]{}, ErrNilFunction
	}
	if df == nil {
		df = numericDerivative(f)
	}
	return polishBase[T]{f: f, df: df, guess: guess}, nil
}

func (b *polishBase[T]) Current() T { return b.guess }

func (b *polishBase[T]) Err() error { return nil }

// Newton is the classic Newton-Raphson step,
// x ← x − f(x)/f′(x). It carries no state beyond the guess and does
// not guard the division: a vanishing derivative propagates as a
// non-finite guess, which the driver's stop condition never accepts.
type Newton[T Scalar] struct {
	polishBase[T]
}

// NewNewton constructs a Newton solver for f starting at guess. A nil
// derivative substitutes the numerical surrogate; a nil function is
// ErrNilFunction.
func NewNewton[T Scalar](f, df PolishFunc[T], guess T) (*Newton[T], error) {
	base, err := newPolishBase(f, df, guess)
	if err != nil {
		return nil, err
	}
	return &Newton[T]{polishBase: base}, nil
}

func (s *Newton[T]) Iterate() {
	s.guess -= s.f(s.guess) / s.df(s.guess)
}

// Secant bootstraps with one Newton step to obtain a second point,
// then applies the two-point secant formula. Near-zero denominators,
// in either phase, silently skip the update rather than fail.
type Secant[T Scalar] struct {
	polishBase[T]
	prev  T
	first bool
}

// NewSecant constructs a secant solver for f starting at guess. The
// derivative (or its surrogate) is only used by the bootstrap step.
func NewSecant[T Scalar](f, df PolishFunc[T], guess T) (*Secant[T], error) {
	base, err := newPolishBase(f, df, guess)
	if err != nil {
		return nil, err
	}
	return &Secant[T]{polishBase: base, first: true}, nil
}

func (s *Secant[T]) Iterate() {
	if s.first {
		fx := s.f(s.guess)
		dfx := s.df(s.guess)
		if modulus(dfx) < machineEpsilon {
			return
		}
		s.prev = s.guess
		s.guess -= fx / dfx
		s.first = false
		return
	}

	fx := s.f(s.guess)
	fPrev := s.f(s.prev)
	if modulus(fx-fPrev) < machineEpsilon {
		return
	}
	next := s.guess - fx*(s.guess-s.prev)/(fx-fPrev)
	s.prev = s.guess
	s.guess = next
}

// Steffensen bootstraps with one Newton step, then applies
// Steffensen's Aitken-accelerated update
// x ← x − f(x)² / (f(x + f(x)) − f(x)), which needs no derivative.
// A near-zero denominator in the steady phase silently skips the
// update, but a near-zero derivative in the bootstrap is a hard
// ErrVanishingDerivative reported through Err: the method has no
// second point yet and cannot recover.
type Steffensen[T Scalar] struct {
	polishBase[T]
	first bool
	err   error
}

// NewSteffensen constructs a Steffensen solver for f starting at
// guess. The derivative (or its surrogate) is only used by the
// bootstrap step.
func NewSteffensen[T Scalar](f, df PolishFunc[T], guess T) (*Steffensen[T], error) {
	base, err := newPolishBase(f, df, guess)
	if err != nil {
		return nil, err
	}
	return &Steffensen[T]{polishBase: base, first: true}, nil
}

func (s *Steffensen[T]) Err() error { return s.err }

func (s *Steffensen[T]) Iterate() {
	if s.first {
		fx := s.f(s.guess)
		dfx := s.df(s.guess)
		if modulus(dfx) < machineEpsilon {
			s.err = ErrVanishingDerivative
			return
		}
		s.guess -= fx / dfx
		s.first = false
		return
	}

	x := s.guess
	fx := s.f(x)
	den := s.f(x+fx) - fx
	if modulus(den) < machineEpsilon {
		return
	}
	s.guess = x - fx*fx/den
}

// PolishResult is the outcome of a polishing solve.
type PolishResult[T Scalar] struct {
	Root       T
	Iterations int
	Converged  bool
}

// FDFSolve drives a polishing solver to convergence.
//
// The loop stops when consecutive guesses differ by at most
// eps·|x| + eps/2 or when the iteration budget runs out; exhaustion is
// not an error and returns the current guess with Converged false. A
// hard solver failure (Steffensen's bootstrap) aborts with the error.
func FDFSolve[T Scalar](solver PolishingSolver[T], opts ...Option) (PolishResult[T], error) {
	if solver == nil {
		return PolishResult[T]{}, ErrNilSolver
	}
	o := buildOptions(opts)

	iter := 0
	var prev T
	havePrev := false
	for {
		cur := solver.Current()
		if havePrev && modulus(cur-prev) <= o.Epsilon*modulus(cur)+o.Epsilon/2 {
			return PolishResult[T]{Root: cur, Iterations: iter, Converged: true}, nil
		}
		if iter >= o.MaxIterations {
			return PolishResult[T]{Root: cur, Iterations: iter, Converged: false}, nil
		}

		prev = cur
		havePrev = true
		solver.Iterate()
		if err := solver.Err(); err != nil {
			return PolishResult[T]{Root: cur, Iterations: iter}, err
		}
		iter++
	}
}
