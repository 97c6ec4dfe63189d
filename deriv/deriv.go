package deriv

import (
	"math"

	"github.com/numo-go/numo/numerr"
)

// Order1CentralRichardson approximates f'(x) by Richardson
// extrapolation of two central differences. Truncation error O(h⁴).
func Order1CentralRichardson(f Func, x, h float64) float64 {
	return (8*(f(x+h)-f(x-h)) - (f(x+2*h) - f(x-2*h))) / (12 * h)
}

// Order1Central3Point is the plain central difference, O(h²).
func Order1Central3Point(f Func, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Order1Central5Point is the five-point central difference, O(h⁴).
func Order1Central5Point(f Func, x, h float64) float64 {
	return (-f(x+2*h) + 8*f(x+h) - 8*f(x-h) + f(x-2*h)) / (12 * h)
}

// Order2Central3Point approximates f''(x) with three points, O(h²).
func Order2Central3Point(f Func, x, h float64) float64 {
	return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
}

// Order2Central5Point approximates f''(x) with five points, O(h⁴).
func Order2Central5Point(f Func, x, h float64) float64 {
	return (-f(x+2*h) + 16*f(x+h) - 30*f(x) + 16*f(x-h) - f(x-2*h)) / (12 * h * h)
}

// Order1ForwardRichardson approximates f'(x) using only points at and
// above x, with Richardson extrapolation over three forward
// differences.
func Order1ForwardRichardson(f Func, x, h float64) float64 {
	d1 := f(x+h) - f(x)
	d2 := f(x+2*h) - f(x)
	d3 := f(x+3*h) - f(x)
	d4 := f(x+4*h) - f(x)
	return (22*(d4-d3) - 62*(d3-d2) + 52*(d2-d1)) / (12 * h)
}

// Order1Forward2Point is the elementary forward difference, O(h).
func Order1Forward2Point(f Func, x, h float64) float64 {
	return (f(x+h) - f(x)) / h
}

// Order1Forward3Point is the second-order one-sided forward
// difference, O(h²).
func Order1Forward3Point(f Func, x, h float64) float64 {
	return (-f(x+2*h) + 4*f(x+h) - 3*f(x)) / (2 * h)
}

// Order2Forward3Point approximates f''(x) from x upward, O(h).
func Order2Forward3Point(f Func, x, h float64) float64 {
	return (f(x+2*h) - 2*f(x+h) + f(x)) / (h * h)
}

// Order2Forward4Point approximates f''(x) from x upward, O(h²).
func Order2Forward4Point(f Func, x, h float64) float64 {
	return (-f(x+3*h) + 4*f(x+2*h) - 5*f(x+h) + 2*f(x)) / (h * h)
}

// Order1BackwardRichardson mirrors Order1ForwardRichardson below x.
func Order1BackwardRichardson(f Func, x, h float64) float64 {
	d1 := f(x-h) - f(x)
	d2 := f(x-2*h) - f(x)
	d3 := f(x-3*h) - f(x)
	d4 := f(x-4*h) - f(x)
	return (22*(d4-d3) - 62*(d3-d2) + 52*(d2-d1)) / (-12 * h)
}

// Order1Backward2Point is the elementary backward difference, O(h).
func Order1Backward2Point(f Func, x, h float64) float64 {
	return (f(x) - f(x-h)) / h
}

// Order1Backward3Point is the second-order one-sided backward
// difference, O(h²).
func Order1Backward3Point(f Func, x, h float64) float64 {
	return (3*f(x) - 4*f(x-h) + f(x-2*h)) / (2 * h)
}

// Order2Backward3Point approximates f''(x) from x downward, O(h).
func Order2Backward3Point(f Func, x, h float64) float64 {
	return (f(x) - 2*f(x-h) + f(x-2*h)) / (h * h)
}

// Order2Backward4Point approximates f''(x) from x downward, O(h²).
func Order2Backward4Point(f Func, x, h float64) float64 {
	return (2*f(x) - 5*f(x-h) + 4*f(x-2*h) - f(x-3*h)) / (h * h)
}

// Derivative approximates the derivative of f at x.
//
// The stencil and step come from opts (see DefaultOptions). The
// effective step grows with the magnitude of x so that x+h remains
// representable away from the origin. A non-finite result is reported
// as a numerr error of kind KindNonFinite carrying an ErrorData
// payload.
func Derivative(f Func, x float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Step < MinStepSize {
		return 0, ErrStepTooSmall
	}

	h := o.Step
	if scaled := h * math.Abs(x); scaled > h {
		h = scaled
	}

	df := o.Formula(f, x, h)
	if math.IsNaN(df) || math.IsInf(df, 0) {
		return 0, numerr.New("deriv.Derivative", numerr.KindNonFinite,
			"derivative evaluated to a non-finite value").
			WithPayload(ErrorData{X: x, Step: h, F: f(x), DF: df})
	}
	return df, nil
}

// DerivativeOf adapts f into a function computing its derivative.
// Unlike Derivative it has no error return: invalid configurations and
// non-finite stencil results surface as NaN, which iterative callers
// already treat as a degenerate evaluation.
func DerivativeOf(f Func, opts ...Option) Func {
	return func(x float64) float64 {
		df, err := Derivative(f, x, opts...)
		if err != nil {
			return math.NaN()
		}
		return df
	}
}
