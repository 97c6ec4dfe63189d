package integrate

import (
	"math"

	"github.com/numo-go/numo/numerr"
)

// refiner produces successively better quadrature estimates; each call
// to step performs one refinement pass and returns the new estimate.
type refiner interface {
	step() float64
}

// drive runs a refiner until two successive estimates agree to within
// the tolerance. Exhausting the iteration cap is a hard failure.
func drive(op string, f Func, lo, hi float64, r refiner, opts []Option) (float64, error) {
	if f == nil {
		return 0, numerr.New(op, numerr.KindBadInput, "integrand must not be nil")
	}
	if !(lo < hi) {
		return 0, numerr.Newf(op, numerr.KindBadInput,
			"bounds must satisfy lo < hi, got [%v, %v]", lo, hi)
	}
	o := buildOptions(opts)

	prev := r.step()
	if !finite(prev) {
		return 0, nonFinite(op, lo, hi, prev, 0)
	}
	for i := 1; i <= o.MaxIterations; i++ {
		cur := r.step()
		if !finite(cur) {
			return 0, nonFinite(op, lo, hi, cur, i)
		}
		if math.Abs(cur-prev) < o.Tolerance {
			return cur, nil
		}
		prev = cur
	}
	err := numerr.Newf(op, numerr.KindNoConvergence,
		"no convergence after %d iterations", o.MaxIterations).
		WithPayload(ErrorData{Lo: lo, Hi: hi, Estimate: prev, Iterations: o.MaxIterations})
	return 0, err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonFinite(op string, lo, hi, estimate float64, iterations int) error {
	return numerr.New(op, numerr.KindNonFinite, "estimate is not finite").
		WithPayload(ErrorData{Lo: lo, Hi: hi, Estimate: estimate, Iterations: iterations})
}

// trapezoidState implements the composite trapezoid ladder: each pass
// doubles the interval count, adding only the new midpoints.
type trapezoidState struct {
	f         Func
	lo, hi    float64
	intervals int
	estimate  float64
}

func (s *trapezoidState) step() float64 {
	if s.intervals == 0 {
		s.intervals = 1
		s.estimate = (s.hi - s.lo) * (s.f(s.lo) + s.f(s.hi)) / 2
		return s.estimate
	}
	h := (s.hi - s.lo) / float64(2*s.intervals)
	var sum float64
	for k := 0; k < s.intervals; k++ {
		sum += s.f(s.lo + float64(2*k+1)*h)
	}
	s.estimate = s.estimate/2 + h*sum
	s.intervals *= 2
	return s.estimate
}

// Trapezoid integrates f over [lo, hi] with the composite trapezoid
// rule, doubling the interval count until two successive estimates
// agree to within the tolerance.
func Trapezoid(f Func, lo, hi float64, opts ...Option) (float64, error) {
	s := &trapezoidState{f: f, lo: lo, hi: hi}
	return drive("integrate.Trapezoid", f, lo, hi, s, opts)
}

// simpsonState recomputes the composite Simpson rule over 2^k intervals
// on pass k.
type simpsonState struct {
	f         Func
	lo, hi    float64
	intervals int
}

func (s *simpsonState) step() float64 {
	if s.intervals == 0 {
		s.intervals = 2
	} else {
		s.intervals *= 2
	}
	h := (s.hi - s.lo) / float64(s.intervals)
	sum := s.f(s.lo) + s.f(s.hi)
	for i := 1; i < s.intervals; i++ {
		c := 2.0
		if i%2 == 1 {
			c = 4.0
		}
		sum += c * s.f(s.lo+float64(i)*h)
	}
	return h / 3 * sum
}

// Simpson integrates f over [lo, hi] with the composite Simpson rule,
// doubling the interval count until two successive estimates agree to
// within the tolerance.
func Simpson(f Func, lo, hi float64, opts ...Option) (float64, error) {
	s := &simpsonState{f: f, lo: lo, hi: hi}
	return drive("integrate.Simpson", f, lo, hi, s, opts)
}

// rombergState holds the triangular extrapolation table; row i refines
// the trapezoid baseline and extrapolates it i times.
type rombergState struct {
	f      Func
	lo, hi float64
	rows   [][]float64
}

func (s *rombergState) step() float64 {
	if len(s.rows) == 0 {
		first := (s.hi - s.lo) * (s.f(s.lo) + s.f(s.hi)) / 2
		s.rows = append(s.rows, []float64{first})
		return first
	}

	i := len(s.rows)
	intervals := 1 << (i - 1) // midpoints added by this trapezoid pass
	h := (s.hi - s.lo) / float64(2*intervals)
	var sum float64
	for k := 0; k < intervals; k++ {
		sum += s.f(s.lo + float64(2*k+1)*h)
	}

	row := make([]float64, i+1)
	row[0] = s.rows[i-1][0]/2 + h*sum
	pow4 := 1.0
	for j := 1; j <= i; j++ {
		pow4 *= 4
		row[j] = row[j-1] + (row[j-1]-s.rows[i-1][j-1])/(pow4-1)
	}
	s.rows = append(s.rows, row)
	return row[i]
}

// Romberg integrates f over [lo, hi] by Richardson extrapolation of the
// trapezoid ladder. For smooth integrands it converges in far fewer
// passes than either composite rule.
func Romberg(f Func, lo, hi float64, opts ...Option) (float64, error) {
	s := &rombergState{f: f, lo: lo, hi: hi}
	return drive("integrate.Romberg", f, lo, hi, s, opts)
}
