package poly

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/numo-go/numo/numerr"
)

// Solve finds every root of p.
//
// Orders 1..3 dispatch to the closed-form solvers. Higher orders loop:
// Laguerre (guess 1.0) extracts one root per pass, the polynomial is
// deflated by the factor (x − root), and the remaining cubic is solved
// analytically. A sub-solver failure aborts the whole solve
// immediately.
//
// Deflation error compounds: roots extracted late come from an already
// perturbed polynomial and are inherently less accurate. No polishing
// against the undeflated input is performed beyond Laguerre's own
// Newton step on each deflated stage.
//
// The accumulated roots are sorted and, when R is float64, filtered to
// real roots, per the package ordering rules.
func Solve[R Scalar, T Scalar](p Polynomial[T], opts ...SolveOption) ([]R, error) {
	o, err := buildOptions("poly.Solve", opts)
	if err != nil {
		return nil, err
	}
	if p.Order() < 1 {
		return nil, numerr.Newf("poly.Solve", numerr.KindBadInput,
			"polynomial order is %d, want at least 1", p.Order())
	}

	work := asComplex(p)
	var roots []complex128

	switch work.Order() {
	case 1:
		roots, err = Linear[complex128](work, opts...)
	case 2:
		roots, err = Quadratic[complex128](work, opts...)
	case 3:
		roots, err = Cubic[complex128](work, opts...)
	default:
		// One options slice for all passes so the escape-step RNG
		// stream persists across deflations.
		sub := make([]SolveOption, 0, len(opts)+2)
		sub = append(sub, opts...)
		sub = append(sub, WithGuess(1), WithRand(o.rng()))

		for work.Order() > 3 {
			var found []complex128
			found, err = Laguerre(work, sub...)
			if err != nil {
				return nil, err
			}
			roots = append(roots, found...)

			work, err = work.Div(New([]complex128{-found[0], 1}))
			if err != nil {
				return nil, err
			}
		}

		var tail []complex128
		tail, err = Cubic[complex128](work, opts...)
		roots = append(roots, tail...)
	}
	if err != nil {
		return nil, err
	}
	return sortAndFilter[R](roots, o.Tolerance), nil
}

// SolveBatch runs Solve concurrently over independent polynomials and
// returns the per-polynomial root slices in input order. Each task
// gets its own derived random stream, so results are deterministic
// regardless of scheduling. The first sub-solver error cancels the
// batch.
func SolveBatch[R Scalar, T Scalar](ps []Polynomial[T], opts ...SolveOption) ([][]R, error) {
	o, err := buildOptions("poly.SolveBatch", opts)
	if err != nil {
		return nil, err
	}

	results := make([][]R, len(ps))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	base := o.rng()
	for i, p := range ps {
		i, p := i, p
		// Derive outside the closure: deriveRNG advances the parent
		// stream and must happen in input order.
		rng := deriveRNG(base, uint64(i))
		g.Go(func() error {
			sub := make([]SolveOption, 0, len(opts)+1)
			sub = append(sub, opts...)
			sub = append(sub, WithRand(rng))

			rs, err := Solve[R](p, sub...)
			if err != nil {
				return err
			}
			results[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
