package roots

import "math"

// DefaultSearchFactor is the default growth ratio of the searching
// methods, the golden ratio.
var DefaultSearchFactor = math.Phi

// SearchOption configures a searching solver at construction.
type SearchOption func(*searchBase)

// WithFactor sets the growth/subdivision ratio.
// Panics unless factor is a positive finite number.
func WithFactor(factor float64) SearchOption {
	if !(factor > 0) || math.IsInf(factor, 0) {
		panic("roots: WithFactor requires a positive finite factor")
	}
	return func(b *searchBase) { b.factor = factor }
}

// SearchSolver is one step of a bracket-acquiring method. Iterate
// moves or grows the interval; it is a no-op once the interval
// brackets a sign change.
type SearchSolver interface {
	// Current returns the interval after the most recent iteration,
	// with X set to its midpoint.
	Current() Bracket

	// Evaluate applies the objective function.
	Evaluate(x float64) float64

	// Iterate performs one searching step.
	Iterate()
}

// searchBase carries the state shared by the searching methods.
type searchBase struct {
	f      Func
	lo, hi float64
	factor float64
}

func newSearchBase(f Func, lo, hi float64, opts []SearchOption) (searchBase, error) {
	if f == nil {
		return searchBase{}, ErrNilFunction
	}
	if lo == hi {
		return searchBase{}, ErrEqualBounds
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	b := searchBase{f: f, lo: lo, hi: hi, factor: DefaultSearchFactor}
	for _, opt := range opts {
		opt(&b)
	}
	return b, nil
}

func (b *searchBase) Current() Bracket {
	return Bracket{Lo: b.lo, X: (b.lo + b.hi) / 2, Hi: b.hi}
}

func (b *searchBase) Evaluate(x float64) float64 { return b.f(x) }

// bracketed reports whether the current interval straddles a sign
// change.
func (b *searchBase) bracketed() bool {
	return b.f(b.lo)*b.f(b.hi) < 0
}

// SearchUp slides the whole interval upward each iteration, growing
// its width by the factor.
type SearchUp struct {
	searchBase
}

// NewSearchUp constructs an upward sliding search over f starting
// from [lo, hi].
func NewSearchUp(f Func, lo, hi float64, opts ...SearchOption) (*SearchUp, error) {
	base, err := newSearchBase(f, lo, hi, opts)
	if err != nil {
		return nil, err
	}
	return &SearchUp{searchBase: base}, nil
}

func (s *SearchUp) Iterate() {
	if s.bracketed() {
		return
	}
	width := s.hi - s.lo
	s.lo = s.hi
	s.hi += width * s.factor
}

// SearchDown slides the whole interval downward each iteration,
// growing its width by the factor.
type SearchDown struct {
	searchBase
}

// NewSearchDown constructs a downward sliding search over f starting
// from [lo, hi].
func NewSearchDown(f Func, lo, hi float64, opts ...SearchOption) (*SearchDown, error) {
	base, err := newSearchBase(f, lo, hi, opts)
	if err != nil {
		return nil, err
	}
	return &SearchDown{searchBase: base}, nil
}

func (s *SearchDown) Iterate() {
	if s.bracketed() {
		return
	}
	width := s.hi - s.lo
	s.hi = s.lo
	s.lo -= width * s.factor
}

// ExpandUp keeps the lower bound and stretches the upper bound upward
// by the factor each iteration.
type ExpandUp struct {
	searchBase
}

// NewExpandUp constructs an upward expanding search over f starting
// from [lo, hi].
func NewExpandUp(f Func, lo, hi float64, opts ...SearchOption) (*ExpandUp, error) {
	base, err := newSearchBase(f, lo, hi, opts)
	if err != nil {
		return nil, err
	}
	return &ExpandUp{searchBase: base}, nil
}

func (s *ExpandUp) Iterate() {
	if s.bracketed() {
		return
	}
	s.hi += (s.hi - s.lo) * s.factor
}

// ExpandDown keeps the upper bound and stretches the lower bound
// downward by the factor each iteration.
type ExpandDown struct {
	searchBase
}

// NewExpandDown constructs a downward expanding search over f
// starting from [lo, hi].
func NewExpandDown(f Func, lo, hi float64, opts ...SearchOption) (*ExpandDown, error) {
	base, err := newSearchBase(f, lo, hi, opts)
	if err != nil {
		return nil, err
	}
	return &ExpandDown{searchBase: base}, nil
}

func (s *ExpandDown) Iterate() {
	if s.bracketed() {
		return
	}
	s.lo -= (s.hi - s.lo) * s.factor
}

// ExpandOut stretches both bounds outward symmetrically by half the
// factor each iteration.
type ExpandOut struct {
	searchBase
}

// NewExpandOut constructs a symmetric expanding search over f
// starting from [lo, hi].
func NewExpandOut(f Func, lo, hi float64, opts ...SearchOption) (*ExpandOut, error) {
	base, err := newSearchBase(f, lo, hi, opts)
	if err != nil {
		return nil, err
	}
	return &ExpandOut{searchBase: base}, nil
}

func (s *ExpandOut) Iterate() {
	if s.bracketed() {
		return
	}
	width := s.hi - s.lo
	s.lo -= width * s.factor / 2
	s.hi += width * s.factor / 2
}

// Subdivide splits the interval into ceil(factor) segments and keeps
// the first segment with a sign change. When no segment brackets, the
// factor doubles so the next pass scans a finer grid.
type Subdivide struct {
	searchBase
}

// NewSubdivide constructs a subdividing search over f on [lo, hi].
func NewSubdivide(f Func, lo, hi float64, opts ...SearchOption) (*Subdivide, error) {
	base, err := newSearchBase(f, lo, hi, opts)
	if err != nil {
		return nil, err
	}
	return &Subdivide{searchBase: base}, nil
}

func (s *Subdivide) Iterate() {
	if s.bracketed() {
		return
	}
	n := int(math.Ceil(s.factor))
	step := (s.hi - s.lo) / float64(n)

	lower := s.lo
	upper := math.Min(s.lo+step, s.hi)
	for i := 0; i < n; i++ {
		if s.f(lower)*s.f(upper) < 0 {
			s.lo, s.hi = lower, upper
			return
		}
		lower = upper
		upper = math.Min(upper+step, s.hi)
	}
	s.factor *= 2
}

// Search drives a searching solver until its interval brackets a sign
// change, then returns that bracket ready for FSolve. Exhausting the
// iteration budget without a bracket is ErrNoBracket; unlike an
// imprecise root, a missing bracket cannot be used at all.
func Search(solver SearchSolver, opts ...Option) (Bracket, error) {
	if solver == nil {
		return Bracket{}, ErrNilSolver
	}
	o := buildOptions(opts)

	iter := 0
	for {
		cur := solver.Current()
		if solver.Evaluate(cur.Lo)*solver.Evaluate(cur.Hi) < 0 {
			return cur, nil
		}
		if iter >= o.MaxIterations {
			return Bracket{}, ErrNoBracket
		}
		solver.Iterate()
		iter++
	}
}
