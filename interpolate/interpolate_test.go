package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePoints(f func(float64) float64, xs ...float64) []Point {
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Point{X: x, Y: f(x)}
	}
	return pts
}

func TestLinear_ReproducesKnots(t *testing.T) {
	pts := []Point{{0, 1}, {1, 3}, {2, 2}, {4, 6}}
	f, err := Linear(pts)
	require.NoError(t, err)
	for _, p := range pts {
		require.InDelta(t, p.Y, f(p.X), 1e-12)
	}
}

func TestLinear_Midpoints(t *testing.T) {
	f, err := Linear([]Point{{0, 0}, {2, 4}, {4, 0}})
	require.NoError(t, err)
	require.InDelta(t, 2.0, f(1), 1e-12)
	require.InDelta(t, 3.0, f(2.5), 1e-12)
}

func TestLinear_Extrapolates(t *testing.T) {
	f, err := Linear([]Point{{0, 0}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	// Slope 2 below the range, slope 1 above.
	require.InDelta(t, -2.0, f(-1), 1e-12)
	require.InDelta(t, 5.0, f(4), 1e-12)
}

func TestLagrange_RecoversPolynomial(t *testing.T) {
	// Three points determine the quadratic exactly, everywhere.
	quad := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	f, err := Lagrange(samplePoints(quad, -1, 0, 2))
	require.NoError(t, err)
	for _, x := range []float64{-3, -0.5, 0.7, 1, 5} {
		require.InDelta(t, quad(x), f(x), 1e-9)
	}
}

func TestLagrange_TwoPointsIsLine(t *testing.T) {
	f, err := Lagrange([]Point{{1, 1}, {3, 5}})
	require.NoError(t, err)
	require.InDelta(t, 3.0, f(2), 1e-12)
}

func TestSpline_ReproducesKnots(t *testing.T) {
	pts := samplePoints(math.Sin, 0, 1, 2, 3, 4, 5, 6)
	f, err := Spline(pts)
	require.NoError(t, err)
	for _, p := range pts {
		require.InDelta(t, p.Y, f(p.X), 1e-12)
	}
}

func TestSpline_ApproximatesSmoothFunction(t *testing.T) {
	f, err := Spline(samplePoints(math.Sin, 0, 0.5, 1, 1.5, 2, 2.5, 3))
	require.NoError(t, err)
	for x := 0.1; x < 3; x += 0.3 {
		require.InDelta(t, math.Sin(x), f(x), 1e-2)
	}
}

func TestSpline_NaturalBoundary(t *testing.T) {
	// The second derivative at the endpoints must vanish; probe it with
	// a symmetric second difference just inside the range.
	f, err := Spline(samplePoints(func(x float64) float64 { return x * x * x }, 0, 1, 2, 3, 4))
	require.NoError(t, err)
	h := 1e-4
	second := (f(0+2*h) - 2*f(0+h) + f(0)) / (h * h)
	require.InDelta(t, 0.0, second, 1e-2)
}

func TestSpline_IsLocallyExactOnCubicErrorBound(t *testing.T) {
	// A natural spline does not reproduce x^3 exactly (the boundary
	// conditions differ), but interior segments stay close.
	cube := func(x float64) float64 { return x * x * x }
	f, err := Spline(samplePoints(cube, -2, -1, 0, 1, 2))
	require.NoError(t, err)
	require.InDelta(t, cube(0.5), f(0.5), 0.5)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		min3   bool
		want   error
	}{
		{"nil points", nil, false, ErrTooFewPoints},
		{"single point", []Point{{0, 0}}, false, ErrTooFewPoints},
		{"spline needs three", []Point{{0, 0}, {1, 1}}, true, ErrTooFewPoints},
		{"duplicate x", []Point{{0, 0}, {0, 1}, {1, 2}}, false, ErrUnorderedPoints},
		{"decreasing x", []Point{{2, 0}, {1, 1}, {0, 2}}, false, ErrUnorderedPoints},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.min3 {
				_, err = Spline(tc.points)
			} else {
				_, err = Linear(tc.points)
				require.ErrorIs(t, err, tc.want)
				_, err = Lagrange(tc.points)
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConstructorsCopyInput(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 4}}
	f, err := Linear(pts)
	require.NoError(t, err)
	pts[1].Y = 100
	require.InDelta(t, 0.5, f(0.5), 1e-12)
}
