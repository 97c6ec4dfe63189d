package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/numo-go/numo/numerr"
)

// Polynomial is a dense polynomial with coefficients in ascending
// degree: index i holds the coefficient of x^i. The coefficient slice
// is never empty and the leading coefficient is never negligible,
// except for the zero polynomial which keeps a single zero
// coefficient. Construct via New, FromScalar or FromRoots; the zero
// value of the type is not a valid polynomial.
type Polynomial[T Scalar] struct {
	coeffs []T
}

// toComplex widens a scalar to complex128.
func toComplex[T Scalar](v T) complex128 {
	switch s := any(v).(type) {
	case float64:
		return complex(s, 0)
	case complex128:
		return s
	}
	return 0
}

// fromComplex narrows a complex value to the scalar kind R, keeping
// only the real part when R is float64.
func fromComplex[R Scalar](z complex128) R {
	var zero R
	if _, real64 := any(zero).(float64); real64 {
		return any(real(z)).(R)
	}
	return any(z).(R)
}

// norm is the squared magnitude, for both scalar kinds.
func norm[T Scalar](v T) float64 {
	z := toComplex(v)
	return real(z)*real(z) + imag(z)*imag(z)
}

func isFinite[T Scalar](v T) bool {
	z := toComplex(v)
	return !math.IsNaN(real(z)) && !math.IsInf(real(z), 0) &&
		!math.IsNaN(imag(z)) && !math.IsInf(imag(z), 0)
}

// New constructs a polynomial from ascending-degree coefficients.
// Trailing coefficients with |c|² below sqrt(machine epsilon) are
// trimmed; empty or all-negligible input collapses to the zero
// polynomial. The input slice is copied.
func New[T Scalar](coefficients []T) Polynomial[T] {
	end := len(coefficients)
	for end > 1 && norm(coefficients[end-1]) < trimThreshold {
		end--
	}
	if end == 0 || (end == 1 && norm(coefficients[0]) < trimThreshold) {
		return Polynomial[T]{coeffs: []T{0}}
	}
	cp := make([]T, end)
	copy(cp, coefficients[:end])
	return Polynomial[T]{coeffs: cp}
}

// FromScalar constructs the constant polynomial p(x) = s.
func FromScalar[T Scalar](s T) Polynomial[T] {
	return New([]T{s})
}

// FromRoots builds the monic polynomial whose roots are exactly the
// given values, by multiplying out the linear factors (x − r).
func FromRoots[T Scalar](roots ...T) Polynomial[T] {
	coeffs := []T{1}
	for _, r := range roots {
		next := make([]T, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] -= r * c
			next[i+1] += c
		}
		coeffs = next
	}
	return New(coeffs)
}

// Order is the polynomial's degree: len(coefficients) − 1.
func (p Polynomial[T]) Order() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficient slice, ascending
// degree.
func (p Polynomial[T]) Coefficients() []T {
	cp := make([]T, len(p.coeffs))
	copy(cp, p.coeffs)
	return cp
}

// Evaluate computes p(x) by Horner's method. It fails with
// KindBadInput on an unconstructed polynomial and with KindNonFinite
// when the result overflows or is NaN.
func (p Polynomial[T]) Evaluate(x T) (T, error) {
	var zero T
	if len(p.coeffs) == 0 {
		return zero, numerr.New("poly.Evaluate", numerr.KindBadInput,
			"polynomial has no coefficients")
	}
	v := p.At(x)
	if !isFinite(v) {
		return zero, numerr.New("poly.Evaluate", numerr.KindNonFinite,
			"evaluation produced a non-finite value").WithPayload(x)
	}
	return v, nil
}

// At computes p(x) by Horner's method without any checking. An
// unconstructed polynomial evaluates to zero; non-finite results are
// returned as-is.
func (p Polynomial[T]) At(x T) T {
	var acc T
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}
	return acc
}

// String renders the polynomial constant-first: the constant term,
// then each higher term as a signed magnitude, "x", and "^degree" for
// degrees above one. Negligible terms are skipped.
func (p Polynomial[T]) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString(formatScalar(p.coeffs[0]))

	for power := 1; power < len(p.coeffs); power++ {
		c := p.coeffs[power]
		if norm(c) < trimThreshold {
			continue
		}
		switch v := any(c).(type) {
		case float64:
			if v < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
			sb.WriteString(strconv.FormatFloat(math.Abs(v), 'g', -1, 64))
		case complex128:
			sb.WriteString(" + ")
			sb.WriteString(strconv.FormatComplex(v, 'g', -1, 128))
		}
		sb.WriteString("x")
		if power >= 2 {
			fmt.Fprintf(&sb, "^%d", power)
		}
	}
	return sb.String()
}

func formatScalar[T Scalar](v T) string {
	switch s := any(v).(type) {
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case complex128:
		return strconv.FormatComplex(s, 'g', -1, 128)
	}
	return ""
}

// Add returns p + q, aligning coefficients by degree.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	out := make([]T, max(len(p.coeffs), len(q.coeffs)))
	for i, c := range p.coeffs {
		out[i] += c
	}
	for i, c := range q.coeffs {
		out[i] += c
	}
	return New(out)
}

// Sub returns p − q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	out := make([]T, max(len(p.coeffs), len(q.coeffs)))
	for i, c := range p.coeffs {
		out[i] += c
	}
	for i, c := range q.coeffs {
		out[i] -= c
	}
	return New(out)
}

// Mul returns p · q by coefficient convolution; the result degree is
// the sum of the operand degrees.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return New[T](nil)
	}
	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}
	return New(out)
}

// Divide performs synthetic long division of p by q, returning
// quotient and remainder. It fails with KindBadInput when the divisor
// is unconstructed, has a negligible leading coefficient (the zero
// polynomial included), or has higher order than the dividend.
func (p Polynomial[T]) Divide(q Polynomial[T]) (Polynomial[T], Polynomial[T], error) {
	var none Polynomial[T]
	if len(q.coeffs) == 0 {
		return none, none, numerr.New("poly.Divide", numerr.KindBadInput,
			"divisor has no coefficients")
	}
	lead := q.coeffs[len(q.coeffs)-1]
	if norm(lead) < trimThreshold {
		return none, none, numerr.New("poly.Divide", numerr.KindBadInput,
			"divisor has a vanishing leading coefficient")
	}
	if q.Order() > p.Order() {
		return none, none, numerr.Newf("poly.Divide", numerr.KindBadInput,
			"divisor order %d exceeds dividend order %d", q.Order(), p.Order())
	}

	rem := make([]T, len(p.coeffs))
	copy(rem, p.coeffs)
	quot := make([]T, len(p.coeffs)-len(q.coeffs)+1)
	for i := len(quot) - 1; i >= 0; i-- {
		f := rem[i+len(q.coeffs)-1] / lead
		quot[i] = f
		for j, d := range q.coeffs {
			rem[i+j] -= f * d
		}
	}
	return New(quot), New(rem[:len(q.coeffs)-1]), nil
}

// Div returns the quotient of p / q.
func (p Polynomial[T]) Div(q Polynomial[T]) (Polynomial[T], error) {
	quot, _, err := p.Divide(q)
	return quot, err
}

// Mod returns the remainder of p / q.
func (p Polynomial[T]) Mod(q Polynomial[T]) (Polynomial[T], error) {
	_, rem, err := p.Divide(q)
	return rem, err
}

// Derivative applies the power rule termwise. Differentiating a
// constant polynomial fails with KindBadInput.
func (p Polynomial[T]) Derivative() (Polynomial[T], error) {
	if p.Order() < 1 {
		return Polynomial[T]{}, numerr.New("poly.Derivative", numerr.KindBadInput,
			"cannot differentiate a constant polynomial")
	}
	out := make([]T, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		k := fromComplex[T](complex(float64(i), 0))
		out[i-1] = p.coeffs[i] * k
	}
	return New(out), nil
}

// Equal reports exact coefficient-wise equality. Trimming happens at
// construction, so polynomials differing only in trailing negligible
// terms compare equal.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c != q.coeffs[i] {
			return false
		}
	}
	return true
}

// asComplex widens the polynomial to complex128 coefficients.
func asComplex[T Scalar](p Polynomial[T]) Polynomial[complex128] {
	out := make([]complex128, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = toComplex(c)
	}
	return Polynomial[complex128]{coeffs: out}
}
