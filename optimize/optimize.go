package optimize

import (
	"math"

	"github.com/numo-go/numo/deriv"
	"github.com/numo-go/numo/numerr"
)

// ErrorData is attached as the payload of non-finite failures.
type ErrorData struct {
	X          float64 // iterate at the point of failure
	Gradient   float64 // last gradient value
	Iterations int     // passes performed
}

// GoldenSection locates an extremum of f inside [lo, hi] by golden
// ratio bracket shrinking. The bounds must differ and should bracket a
// single extremum; reversed bounds are swapped. The search stops when
// the bracket width drops below eps*|x| + eps/2. Exhausting the
// iteration cap returns the midpoint estimate with Converged false.
func GoldenSection(f Func, lo, hi float64, opts ...Option) (Result, error) {
	const op = "optimize.GoldenSection"
	if f == nil {
		return Result{}, numerr.New(op, numerr.KindBadInput, "objective must not be nil")
	}
	if lo == hi {
		return Result{}, numerr.Newf(op, numerr.KindBadInput, "bounds must differ, got %v", lo)
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	o := buildOptions(opts)

	g := f
	if o.Mode == Maximize {
		g = func(x float64) float64 { return -f(x) }
	}

	// Four-point bracket a < b < c < d with b and c placed at the
	// golden sections of [a, d].
	invPhi := 1 / math.Phi
	a, d := lo, hi
	b := d - (d-a)*invPhi
	c := a + (d-a)*invPhi
	gb, gc := g(b), g(c)

	for i := 0; i < o.MaxIterations; i++ {
		x := (a + d) / 2
		if d-a <= o.Epsilon*math.Abs(x)+o.Epsilon/2 {
			return Result{X: x, Value: f(x), Iterations: i, Converged: true}, nil
		}
		if gb <= gc {
			d, c, gc = c, b, gb
			b = d - (d-a)*invPhi
			gb = g(b)
		} else {
			a, b, gb = b, c, gc
			c = a + (d-a)*invPhi
			gc = g(c)
		}
	}
	x := (a + d) / 2
	return Result{X: x, Value: f(x), Iterations: o.MaxIterations, Converged: false}, nil
}

// GradientDescent walks from x0 against the gradient of f with a fixed
// learning rate. When df is nil a numerical derivative of f is used
// instead. The walk stops when the gradient magnitude drops below the
// epsilon. Exhausting the iteration cap returns the current iterate
// with Converged false; a non-finite iterate or gradient is a hard
// failure.
func GradientDescent(f, df Func, x0 float64, opts ...Option) (Result, error) {
	const op = "optimize.GradientDescent"
	if f == nil {
		return Result{}, numerr.New(op, numerr.KindBadInput, "objective must not be nil")
	}
	o := buildOptions(opts)

	grad := df
	if grad == nil {
		grad = Func(deriv.DerivativeOf(deriv.Func(f)))
	}

	x := x0
	for i := 1; i <= o.MaxIterations; i++ {
		gv := grad(x)
		if o.Mode == Maximize {
			gv = -gv
		}
		if !finite(gv) {
			return Result{}, numerr.New(op, numerr.KindNonFinite, "gradient is not finite").
				WithPayload(ErrorData{X: x, Gradient: gv, Iterations: i})
		}
		x -= o.LearningRate * gv
		if !finite(x) {
			return Result{}, numerr.New(op, numerr.KindNonFinite, "iterate is not finite").
				WithPayload(ErrorData{X: x, Gradient: gv, Iterations: i})
		}
		if math.Abs(gv) <= o.Epsilon {
			return Result{X: x, Value: f(x), Iterations: i, Converged: true}, nil
		}
	}
	return Result{X: x, Value: f(x), Iterations: o.MaxIterations, Converged: false}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
