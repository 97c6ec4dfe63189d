package deriv_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numo-go/numo/deriv"
	"github.com/numo-go/numo/numerr"
)

// firstOrderFormulas lists every f' stencil with a loose accuracy
// bound appropriate to its truncation order at the default step.
var firstOrderFormulas = []struct {
	name    string
	formula deriv.Formula
	tol     float64
}{
	{"CentralRichardson", deriv.Order1CentralRichardson, 1e-9},
	{"Central3Point", deriv.Order1Central3Point, 1e-6},
	{"Central5Point", deriv.Order1Central5Point, 1e-9},
	{"ForwardRichardson", deriv.Order1ForwardRichardson, 1e-6},
	{"Forward2Point", deriv.Order1Forward2Point, 1e-4},
	{"Forward3Point", deriv.Order1Forward3Point, 1e-6},
	{"BackwardRichardson", deriv.Order1BackwardRichardson, 1e-6},
	{"Backward2Point", deriv.Order1Backward2Point, 1e-4},
	{"Backward3Point", deriv.Order1Backward3Point, 1e-6},
}

func TestDerivative_FirstOrderStencils(t *testing.T) {
	// d/dx sin(x) at x=1 is cos(1); smooth and well away from the
	// step-scaling threshold.
	f := math.Sin
	want := math.Cos(1)

	for _, tc := range firstOrderFormulas {
		t.Run(tc.name, func(t *testing.T) {
			got, err := deriv.Derivative(f, 1, deriv.WithFormula(tc.formula))
			require.NoError(t, err)
			require.InDelta(t, want, got, tc.tol)
		})
	}
}

func TestDerivative_SecondOrderStencils(t *testing.T) {
	// d²/dx² exp(x) at x=0.5 is exp(0.5). Second-order stencils
	// divide by h², so a larger step keeps cancellation at bay.
	f := math.Exp
	want := math.Exp(0.5)

	formulas := []struct {
		name    string
		formula deriv.Formula
		tol     float64
	}{
		{"Central3Point", deriv.Order2Central3Point, 1e-3},
		{"Central5Point", deriv.Order2Central5Point, 1e-3},
		{"Forward3Point", deriv.Order2Forward3Point, 1e-2},
		{"Forward4Point", deriv.Order2Forward4Point, 1e-2},
		{"Backward3Point", deriv.Order2Backward3Point, 1e-2},
		{"Backward4Point", deriv.Order2Backward4Point, 1e-2},
	}
	for _, tc := range formulas {
		t.Run(tc.name, func(t *testing.T) {
			got, err := deriv.Derivative(f, 0.5,
				deriv.WithFormula(tc.formula),
				deriv.WithStepSize(1e-4))
			require.NoError(t, err)
			require.InDelta(t, want, got, tc.tol)
		})
	}
}

func TestDerivative_DefaultFormula(t *testing.T) {
	// x³ has derivative 3x²; Richardson is exact for cubics up to
	// rounding.
	got, err := deriv.Derivative(func(x float64) float64 { return x * x * x }, 2)
	require.NoError(t, err)
	require.InDelta(t, 12.0, got, 1e-8)
}

func TestDerivative_StepScalesWithX(t *testing.T) {
	// At x=1e8 the unscaled default step would vanish into rounding;
	// scaling keeps the estimate usable.
	got, err := deriv.Derivative(func(x float64) float64 { return x * x }, 1e8)
	require.NoError(t, err)
	require.InEpsilon(t, 2e8, got, 1e-6)
}

func TestDerivative_NilFunction(t *testing.T) {
	_, err := deriv.Derivative(nil, 1)
	require.ErrorIs(t, err, deriv.ErrNilFunction)
}

func TestDerivative_StepTooSmall(t *testing.T) {
	_, err := deriv.Derivative(math.Sin, 1, deriv.WithStepSize(deriv.MinStepSize/2))
	require.ErrorIs(t, err, deriv.ErrStepTooSmall)
}

func TestDerivative_NonFinite(t *testing.T) {
	// sqrt has an infinite derivative at 0; the central stencil
	// samples x-h < 0 and produces NaN.
	_, err := deriv.Derivative(math.Sqrt, 0)
	require.ErrorIs(t, err, numerr.ErrNonFinite)

	var nerr *numerr.Error
	require.True(t, errors.As(err, &nerr))
	data, ok := nerr.Payload.(deriv.ErrorData)
	require.True(t, ok)
	require.Equal(t, 0.0, data.X)
	require.True(t, math.IsNaN(data.DF))
}

func TestWithStepSize_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { deriv.WithStepSize(0) })
	require.Panics(t, func() { deriv.WithStepSize(-1e-3) })
	require.Panics(t, func() { deriv.WithStepSize(math.NaN()) })
	require.Panics(t, func() { deriv.WithStepSize(math.Inf(1)) })
}

func TestWithFormula_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { deriv.WithFormula(nil) })
}

func TestDerivativeOf(t *testing.T) {
	df := deriv.DerivativeOf(math.Sin)
	require.InDelta(t, math.Cos(0.3), df(0.3), 1e-8)
	require.InDelta(t, math.Cos(2.0), df(2.0), 1e-8)

	// Errors collapse to NaN.
	require.True(t, math.IsNaN(deriv.DerivativeOf(nil)(1)))
}
