package poly

import (
	"math"
	"math/cmplx"

	"github.com/numo-go/numo/numerr"
)

// LaguerreState is the payload attached to a KindNoConvergence error:
// the last estimate and the number of iterations consumed.
type LaguerreState struct {
	Root       complex128
	Iterations int
}

// Laguerre finds a single root of a polynomial of order ≥ 4 by
// Laguerre's method.
//
// Each iteration forms G = p′(x)/p(x) and H = G² − p″(x)/p(x) and
// takes the step n / (G ± √((n−1)(nH − G²))), with the ± branch
// maximizing the denominator's magnitude. A denominator below the
// tolerance substitutes the fallback step 0.1·x. Every tenth
// iteration the step is replaced outright by a uniform draw from
// [0, 1), a stagnation-escape that keeps the method from orbiting;
// the draw comes from the injected random source (WithRand), which
// defaults to a fixed-seed stream so runs are reproducible.
//
// The loop stops when |p(x)| or the step magnitude drops below the
// tolerance. Exhausting the iteration budget is a hard
// KindNoConvergence failure carrying a LaguerreState payload. On
// success the root is refined by a Newton polish against the same
// polynomial with its exact derivative, then returned as a
// single-element slice.
func Laguerre[T Scalar](p Polynomial[T], opts ...SolveOption) ([]complex128, error) {
	o, err := buildOptions("poly.Laguerre", opts)
	if err != nil {
		return nil, err
	}
	if p.Order() < 4 {
		return nil, numerr.Newf("poly.Laguerre", numerr.KindBadInput,
			"polynomial order is %d, want at least 4", p.Order())
	}

	cp := asComplex(p)
	root := o.Guess
	if cmplx.Abs(cp.At(root)) < o.Tolerance {
		return []complex128{root}, nil
	}

	d1, err := cp.Derivative()
	if err != nil {
		return nil, err
	}
	d2, err := d1.Derivative()
	if err != nil {
		return nil, err
	}

	n := complex(float64(cp.Order()), 0)
	rng := o.rng()

	converged := false
	iterations := 0
	for i := 1; i <= o.MaxIterations; i++ {
		iterations = i

		pv := cp.At(root)
		if cmplx.Abs(pv) < o.Tolerance {
			converged = true
			break
		}

		g := d1.At(root) / pv
		h := g*g - d2.At(root)/pv

		sq := cmplx.Sqrt((n - 1) * (n*h - g*g))
		denom := g + sq
		if cmplx.Abs(g-sq) > cmplx.Abs(denom) {
			denom = g - sq
		}

		var step complex128
		if cmplx.Abs(denom) < o.Tolerance {
			step = 0.1 * root
		} else {
			step = n / denom
		}
		if i%10 == 0 {
			step = complex(rng.Float64(), 0)
		}

		if cmplx.Abs(step) < o.Tolerance {
			converged = true
			break
		}
		root -= step
	}

	if !converged {
		return nil, numerr.Newf("poly.Laguerre", numerr.KindNoConvergence,
			"no convergence after %d iterations", iterations).
			WithPayload(LaguerreState{Root: root, Iterations: iterations})
	}
	return []complex128{newtonPolish(cp, d1, root, o.Tolerance, o.MaxIterations)}, nil
}

// newtonPolish refines root against p using its exact derivative dp.
// Best effort: it stops on a vanishing derivative or when both the
// residual and the correction are componentwise below the tolerance.
func newtonPolish(p, dp Polynomial[complex128], root complex128, tolerance float64, maxIterations int) complex128 {
	for i := 0; i < maxIterations; i++ {
		dv := dp.At(root)
		if cmplx.Abs(dv) < tolerance {
			break
		}
		dx := p.At(root) / dv
		root -= dx
		fv := p.At(root)
		if math.Abs(real(fv)) < tolerance && math.Abs(imag(fv)) < tolerance &&
			math.Abs(real(dx)) < tolerance && math.Abs(imag(dx)) < tolerance {
			break
		}
	}
	return root
}
