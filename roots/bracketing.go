package roots

import "math"

// BracketingSolver is one step of a bracket-narrowing method. Iterate
// must keep the sign change inside [Lo, Hi]; the driving loop owns
// termination.
type BracketingSolver interface {
	// Current returns the bracket after the most recent iteration.
	Current() Bracket

	// Evaluate applies the objective function.
	Evaluate(x float64) float64

	// Iterate performs one narrowing step.
	Iterate()
}

// bracketBase carries the state shared by the bracketing methods.
type bracketBase struct {
	f   Func
	cur Bracket
}

func newBracketBase(f Func, lo, hi float64) (bracketBase, error) {
	if f == nil {
		return bracketBase{}, ErrNilFunction
	}
	if lo == hi {
		return bracketBase{}, ErrEqualBounds
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return bracketBase{f: f, cur: Bracket{Lo: lo, X: 0, Hi: hi}}, nil
}

func (b *bracketBase) Current() Bracket { return b.cur }

func (b *bracketBase) Evaluate(x float64) float64 { return b.f(x) }

// Bisection halves the bracket each iteration, keeping the half with
// the sign change. The estimate is the midpoint of the kept half.
type Bisection struct {
	bracketBase
}

// NewBisection constructs a bisection solver over f on [lo, hi].
// Reversed bounds are swapped; equal bounds are ErrEqualBounds.
func NewBisection(f Func, lo, hi float64) (*Bisection, error) {
	base, err := newBracketBase(f, lo, hi)
	if err != nil {
		return nil, err
	}
	return &Bisection{bracketBase: base}, nil
}

func (s *Bisection) Iterate() {
	cur := s.cur
	mid := (cur.Lo + cur.Hi) / 2
	if s.f(cur.Lo)*s.f(mid) < 0 {
		s.cur = Bracket{Lo: cur.Lo, X: (cur.Lo + mid) / 2, Hi: mid}
	} else {
		s.cur = Bracket{Lo: mid, X: (mid + cur.Hi) / 2, Hi: cur.Hi}
	}
}

// Ridder refines the midpoint with an exponential correction factor
// before choosing the sub-interval, converging roughly quadratically
// on smooth functions while never leaving the bracket.
type Ridder struct {
	bracketBase
}

// NewRidder constructs a Ridder solver over f on [lo, hi].
func NewRidder(f Func, lo, hi float64) (*Ridder, error) {
	base, err := newBracketBase(f, lo, hi)
	if err != nil {
		return nil, err
	}
	return &Ridder{bracketBase: base}, nil
}

func (s *Ridder) Iterate() {
	lo, hi := s.cur.Lo, s.cur.Hi
	fLo, fHi := s.f(lo), s.f(hi)

	mid := (lo + hi) / 2
	fMid := s.f(mid)

	sign := 1.0
	if fLo-fHi < 0 {
		sign = -1
	}
	xNew := mid + (mid-lo)*sign*fMid/math.Sqrt(fMid*fMid-fLo*fHi)
	fNew := s.f(xNew)

	// Prefer the tightest sub-interval that still brackets, with the
	// bounds put back in order.
	switch {
	case fMid*fNew < 0:
		s.cur = orderedBracket(mid, xNew)
	case fHi*fNew < 0:
		s.cur = orderedBracket(hi, xNew)
	default:
		s.cur = orderedBracket(lo, xNew)
	}
}

// orderedBracket pairs an old bound with the new estimate, normalizing
// order; the estimate always becomes the new X.
func orderedBracket(old, estimate float64) Bracket {
	if old < estimate {
		return Bracket{Lo: old, X: estimate, Hi: estimate}
	}
	return Bracket{Lo: estimate, X: estimate, Hi: old}
}

// RegulaFalsi replaces one bound with the secant-line intercept of the
// two bound evaluations each iteration.
type RegulaFalsi struct {
	bracketBase
}

// NewRegulaFalsi constructs a regula falsi (false position) solver
// over f on [lo, hi].
func NewRegulaFalsi(f Func, lo, hi float64) (*RegulaFalsi, error) {
	base, err := newBracketBase(f, lo, hi)
	if err != nil {
		return nil, err
	}
	return &RegulaFalsi{bracketBase: base}, nil
}

func (s *RegulaFalsi) Iterate() {
	cur := s.cur
	fLo, fHi := s.f(cur.Lo), s.f(cur.Hi)

	x := (cur.Lo*fHi - cur.Hi*fLo) / (fHi - fLo)
	if s.f(x)*fLo < 0 {
		s.cur = Bracket{Lo: cur.Lo, X: x, Hi: x}
	} else {
		s.cur = Bracket{Lo: x, X: x, Hi: cur.Hi}
	}
}

// Result is the outcome of a bracketing solve: the final estimate,
// the final bounds, the iterations consumed, and whether the stop
// condition (rather than the iteration budget) ended the loop.
type Result struct {
	Root       float64
	Lo, Hi     float64
	Iterations int
	Converged  bool
}

// FSolve drives a bracketing solver to convergence.
//
// The loop stops when the interval width is at most eps·x + eps/2 or
// when the iteration budget runs out; the condition is evaluated
// before the first Iterate, so zero-iteration termination is possible.
// Budget exhaustion is not an error: the best estimate is returned
// with Converged set to false.
func FSolve(solver BracketingSolver, opts ...Option) (Result, error) {
	if solver == nil {
		return Result{}, ErrNilSolver
	}
	o := buildOptions(opts)

	iter := 0
	for {
		cur := solver.Current()
		if cur.Width() <= o.Epsilon*cur.X+o.Epsilon/2 {
			return Result{Root: cur.X, Lo: cur.Lo, Hi: cur.Hi, Iterations: iter, Converged: true}, nil
		}
		if iter >= o.MaxIterations {
			return Result{Root: cur.X, Lo: cur.Lo, Hi: cur.Hi, Iterations: iter, Converged: false}, nil
		}
		solver.Iterate()
		iter++
	}
}
