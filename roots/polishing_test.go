package roots_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numo-go/numo/roots"
)

func TestNewtonSecant_Agree(t *testing.T) {
	// cos(x) = x has a single root near 0.739085.
	f := func(x float64) float64 { return math.Cos(x) - x }
	df := func(x float64) float64 { return -math.Sin(x) - 1 }

	nt, err := roots.NewNewton(f, df, 1)
	require.NoError(t, err)
	newtonRes, err := roots.FDFSolve[float64](nt)
	require.NoError(t, err)
	require.True(t, newtonRes.Converged)

	sc, err := roots.NewSecant(f, df, 1)
	require.NoError(t, err)
	secantRes, err := roots.FDFSolve[float64](sc)
	require.NoError(t, err)
	require.True(t, secantRes.Converged)

	require.InDelta(t, newtonRes.Root, secantRes.Root, 1e-6)
	require.InDelta(t, 0.7390851332151607, newtonRes.Root, 1e-6)
}

func TestNewton_DerivativeSurrogate(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	s, err := roots.NewNewton(f, nil, 1)
	require.NoError(t, err)

	res, err := roots.FDFSolve[float64](s)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, math.Sqrt2, res.Root, 1e-6)
}

func TestSteffensen_Converges(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	s, err := roots.NewSteffensen(f, df, 1.5)
	require.NoError(t, err)

	res, err := roots.FDFSolve[float64](s)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, math.Sqrt2, res.Root, 1e-6)
}

func TestBootstrapAsymmetry(t *testing.T) {
	// Both methods bootstrap with a Newton step, and the derivative
	// of x²−4 vanishes at 0. Secant skips the update silently;
	// Steffensen fails hard.
	f := func(x float64) float64 { return x*x - 4 }
	df := func(x float64) float64 { return 2 * x }

	sc, err := roots.NewSecant(f, df, 0)
	require.NoError(t, err)
	sc.Iterate()
	require.NoError(t, sc.Err())
	require.Equal(t, 0.0, sc.Current())

	st, err := roots.NewSteffensen(f, df, 0)
	require.NoError(t, err)
	st.Iterate()
	require.ErrorIs(t, st.Err(), roots.ErrVanishingDerivative)

	// Through the driver: the stalled Secant "converges" in place,
	// the Steffensen failure aborts the solve.
	sc2, err := roots.NewSecant(f, df, 0)
	require.NoError(t, err)
	res, err := roots.FDFSolve[float64](sc2)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Root)

	st2, err := roots.NewSteffensen(f, df, 0)
	require.NoError(t, err)
	_, err = roots.FDFSolve[float64](st2)
	require.ErrorIs(t, err, roots.ErrVanishingDerivative)
}

func TestNewton_ComplexRoot(t *testing.T) {
	// z² + 1 has roots ±i; from the upper half plane Newton lands on i.
	f := func(z complex128) complex128 { return z*z + 1 }
	df := func(z complex128) complex128 { return 2 * z }

	s, err := roots.NewNewton(f, df, complex(0.5, 0.5))
	require.NoError(t, err)

	res, err := roots.FDFSolve[complex128](s)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Less(t, cmplx.Abs(res.Root-complex(0, 1)), 1e-6)
}

func TestSecant_ComplexSurrogate(t *testing.T) {
	f := func(z complex128) complex128 { return z*z + 1 }

	s, err := roots.NewSecant(f, nil, complex(0.5, 0.5))
	require.NoError(t, err)

	res, err := roots.FDFSolve[complex128](s)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Less(t, cmplx.Abs(f(res.Root)), 1e-5)
}

func TestFDFSolve_ZeroIterationNotPossibleWithoutHistory(t *testing.T) {
	// The first stop check has no previous guess to compare against,
	// so at least one iterate always runs.
	f := func(x float64) float64 { return x - 1 }
	df := func(x float64) float64 { return 1 }

	s, err := roots.NewNewton(f, df, 1) // already at the root
	require.NoError(t, err)

	res, err := roots.FDFSolve[float64](s)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.Equal(t, 1.0, res.Root)
}

func TestFDFSolve_BestEffortOnExhaustion(t *testing.T) {
	// With a single allowed iteration Newton cannot meet the
	// tolerance from a distant guess; no error, Converged false.
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	s, err := roots.NewNewton(f, df, 100)
	require.NoError(t, err)

	res, err := roots.FDFSolve[float64](s, roots.WithMaxIterations(1))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
}

func TestPolishing_NilFunction(t *testing.T) {
	_, err := roots.NewNewton[float64](nil, nil, 1)
	require.ErrorIs(t, err, roots.ErrNilFunction)
	_, err = roots.NewSecant[float64](nil, nil, 1)
	require.ErrorIs(t, err, roots.ErrNilFunction)
	_, err = roots.NewSteffensen[float64](nil, nil, 1)
	require.ErrorIs(t, err, roots.ErrNilFunction)
}

func TestFDFSolve_NilSolver(t *testing.T) {
	_, err := roots.FDFSolve[float64](nil)
	require.ErrorIs(t, err, roots.ErrNilSolver)
}
