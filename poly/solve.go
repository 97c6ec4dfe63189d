package poly

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/numo-go/numo/numerr"
)

// buildOptions folds the functional options and validates the fields
// every solver depends on.
func buildOptions(op string, opts []SolveOption) (SolveOptions, error) {
	o := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) || math.IsNaN(o.Tolerance) {
		return o, numerr.Newf(op, numerr.KindBadInput,
			"tolerance must be a positive finite number, got %g", o.Tolerance)
	}
	if o.MaxIterations < 1 {
		return o, numerr.Newf(op, numerr.KindBadInput,
			"max iterations must be at least 1, got %d", o.MaxIterations)
	}
	return o, nil
}

// sortAndFilter orders roots by real part ascending, then imaginary
// part ascending, treating real parts within sqrt(tolerance) of each
// other as ties. When R is float64, roots with imaginary magnitude at
// or above sqrt(tolerance) are then discarded.
func sortAndFilter[R Scalar](roots []complex128, tolerance float64) []R {
	cut := math.Sqrt(tolerance)

	sort.Slice(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if math.Abs(real(b)-real(a)) < cut {
			return imag(a) < imag(b)
		}
		return real(a) < real(b)
	})

	var zero R
	_, wantReal := any(zero).(float64)

	out := make([]R, 0, len(roots))
	for _, z := range roots {
		if wantReal && math.Abs(imag(z)) >= cut {
			continue
		}
		out = append(out, fromComplex[R](z))
	}
	return out
}

// Linear solves a polynomial of order exactly 1: root = −c0/c1.
// The first type parameter selects the output scalar; pass it
// explicitly and let T be inferred, e.g. poly.Linear[float64](p).
func Linear[R Scalar, T Scalar](p Polynomial[T], opts ...SolveOption) ([]R, error) {
	o, err := buildOptions("poly.Linear", opts)
	if err != nil {
		return nil, err
	}
	if p.Order() != 1 {
		return nil, numerr.Newf("poly.Linear", numerr.KindBadInput,
			"polynomial order is %d, want exactly 1", p.Order())
	}
	c := asComplex(p).coeffs
	return sortAndFilter[R]([]complex128{-c[0] / c[1]}, o.Tolerance), nil
}

// Quadratic solves a polynomial of order exactly 2 by the quadratic
// formula. The ± branch is picked by the sign of re(conj(b)·√disc) so
// q never suffers cancellation between b and the discriminant; the
// roots are q/a and c/q. Fails with KindDegenerate when |q| or |a|
// falls below the tolerance.
func Quadratic[R Scalar, T Scalar](p Polynomial[T], opts ...SolveOption) ([]R, error) {
	o, err := buildOptions("poly.Quadratic", opts)
	if err != nil {
		return nil, err
	}
	if p.Order() != 2 {
		return nil, numerr.Newf("poly.Quadratic", numerr.KindBadInput,
			"polynomial order is %d, want exactly 2", p.Order())
	}

	coeffs := asComplex(p).coeffs
	a, b, c := coeffs[2], coeffs[1], coeffs[0]

	disc := cmplx.Sqrt(b*b - 4*a*c)
	if real(cmplx.Conj(b)*disc) < 0 {
		disc = -disc
	}
	q := -0.5 * (b + disc)

	if cmplx.Abs(q) < o.Tolerance || cmplx.Abs(a) < o.Tolerance {
		return nil, numerr.New("poly.Quadratic", numerr.KindDegenerate,
			"quadratic polynomial is ill formed").WithPayload(coeffs)
	}
	return sortAndFilter[R]([]complex128{q / a, c / q}, o.Tolerance), nil
}

// Cubic solves a polynomial of order exactly 3 analytically. The
// coefficients are normalized by the leading one, the depressed-cubic
// intermediates Q and R are formed, and the cube-root branch is chosen
// by the sign of re(conj(R)·√(R²−Q³)), the same cancellation-avoiding
// rule as Quadratic. All three roots are always produced, complex in
// general.
func Cubic[R Scalar, T Scalar](p Polynomial[T], opts ...SolveOption) ([]R, error) {
	o, err := buildOptions("poly.Cubic", opts)
	if err != nil {
		return nil, err
	}
	if p.Order() != 3 {
		return nil, numerr.Newf("poly.Cubic", numerr.KindBadInput,
			"polynomial order is %d, want exactly 3", p.Order())
	}

	coeffs := asComplex(p).coeffs
	lead := coeffs[3]
	a, b, c := coeffs[2]/lead, coeffs[1]/lead, coeffs[0]/lead

	qq := (a*a - 3*b) / 9
	rr := (2*a*a*a - 9*a*b + 27*c) / 54

	d := cmplx.Sqrt(rr*rr - qq*qq*qq)
	if real(cmplx.Conj(rr)*d) < 0 {
		d = -d
	}
	bigA := -cmplx.Pow(rr+d, 1.0/3.0)
	var bigB complex128
	if cmplx.Abs(bigA) != 0 {
		bigB = qq / bigA
	}

	rot := complex(0, 0.5*math.Sqrt(3)) * (bigA - bigB)
	roots := []complex128{
		bigA + bigB - a/3,
		-0.5*(bigA+bigB) - a/3 + rot,
		-0.5*(bigA+bigB) - a/3 - rot,
	}
	return sortAndFilter[R](roots, o.Tolerance), nil
}
