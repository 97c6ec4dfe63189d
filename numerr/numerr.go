package numerr

import (
	"errors"
	"fmt"
)

// Kind classifies a numerical failure. The zero value is KindUnknown so
// that an accidentally zero-initialized Error never masquerades as a
// specific failure class.
type Kind int

const (
	// KindUnknown is the zero Kind; it matches no sentinel.
	KindUnknown Kind = iota

	// KindBadInput marks a precondition violation detected eagerly at
	// entry: invalid tolerance, iteration budget < 1, insufficient
	// polynomial order, malformed bounds.
	KindBadInput

	// KindDegenerate marks numerical degeneracy detected at the point of
	// computation: near-zero denominators, ill-formed coefficients.
	KindDegenerate

	// KindNonFinite marks a non-finite (NaN or ±Inf) computation result.
	KindNonFinite

	// KindNoConvergence marks an iterative method that exhausted its
	// iteration budget without meeting the requested tolerance.
	KindNoConvergence
)

// String returns a short human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindBadInput:
		return "bad input"
	case KindDegenerate:
		return "numerical degeneracy"
	case KindNonFinite:
		return "non-finite result"
	case KindNoConvergence:
		return "no convergence"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *Error of the same Kind.
var (
	// ErrBadInput matches errors of KindBadInput.
	ErrBadInput = errors.New("numerr: bad input")

	// ErrDegenerate matches errors of KindDegenerate.
	ErrDegenerate = errors.New("numerr: numerical degeneracy")

	// ErrNonFinite matches errors of KindNonFinite.
	ErrNonFinite = errors.New("numerr: non-finite result")

	// ErrNoConvergence matches errors of KindNoConvergence.
	ErrNoConvergence = errors.New("numerr: no convergence")
)

// Error is the structured failure returned by numo solvers.
//
// Op names the operation that failed ("poly.Solve", "deriv.Derivative");
// Kind classifies the failure; Msg is the human-readable description;
// Payload optionally carries method-specific diagnostics (the offending
// argument, step size, partial roots, iteration count).
type Error struct {
	Op      string // operation that produced the error, e.g. "poly.Laguerre"
	Kind    Kind   // failure class
	Msg     string // human-readable description
	Payload any    // optional method-specific diagnostic data
}

// New constructs an *Error with the given operation, kind and message.
func New(op string, kind Kind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Msg: msg}
}

// Newf is New with fmt.Sprintf formatting of the message.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WithPayload attaches diagnostic data to the error and returns it,
// allowing construction in a single expression:
//
//	numerr.New(op, numerr.KindNonFinite, "...").WithPayload(data)
func (e *Error) WithPayload(payload any) *Error {
	e.Payload = payload
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Op + ": " + e.Msg
}

// Is reports whether target is the sentinel corresponding to e.Kind,
// wiring *Error into the errors.Is machinery.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrBadInput:
		return e.Kind == KindBadInput
	case ErrDegenerate:
		return e.Kind == KindDegenerate
	case ErrNonFinite:
		return e.Kind == KindNonFinite
	case ErrNoConvergence:
		return e.Kind == KindNoConvergence
	default:
		return false
	}
}
