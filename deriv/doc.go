// Package deriv computes numerical derivatives of real-valued functions
// using finite-difference formulas.
//
// # Contract
//
// Given a function f and a point x, return an approximate derivative or
// a structured error:
//
//	df, err := deriv.Derivative(f, x)
//
// The stencil and the step size are pluggable:
//
//	df, err := deriv.Derivative(f, x,
//	    deriv.WithFormula(deriv.Order1Central5Point),
//	    deriv.WithStepSize(1e-5),
//	)
//
// # Formulas
//
// Fifteen stencils are provided, named Order<n><Direction><Points>:
// first- and second-order derivatives, central/forward/backward
// directions, 2- to 5-point stencils plus Richardson-extrapolated
// variants. The default is Order1CentralRichardson, the most accurate
// first-order stencil for smooth functions.
//
// One-sided (forward/backward) stencils matter near domain boundaries
// where the function cannot be evaluated on both sides of x.
//
// # Step size
//
// The default step is cbrt(machine epsilon) — the classic optimum that
// balances truncation error against floating-point cancellation for
// first-order central differences. The effective step is scaled up for
// large |x| (h·x when that exceeds h). Steps below sqrt(machine
// epsilon) are rejected as ErrStepTooSmall: cancellation makes the
// result meaningless there.
//
// # Errors
//
//   - ErrNilFunction  — f is nil.
//   - ErrStepTooSmall — requested step below sqrt(machine epsilon).
//   - numerr KindNonFinite — the stencil produced NaN or ±Inf; the
//     error payload is an ErrorData{X, Step, F, DF} snapshot.
//
// DerivativeOf adapts a function into its derivative function without
// per-call error checking, for use as a derivative surrogate inside
// iterative solvers; it returns NaN on invalid input instead of an
// error, and callers are expected to guard against non-finite values
// the way the roots package does.
//
// Complexity: every formula is O(points) function evaluations, O(1)
// memory.
package deriv
