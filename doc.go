// Package numo is a numerical-methods toolkit: root finding, numerical
// differentiation, polynomial algebra and root solving, interpolation,
// integration, and basic one-dimensional optimization.
//
// 🚀 What is numo?
//
//	A small, dependency-light library that brings together:
//		• Polynomials: dense coefficient arithmetic, Horner evaluation,
//		  exact derivatives, synthetic division
//		• Polynomial roots: closed-form linear/quadratic/cubic formulas
//		  plus Laguerre's method with deflation for arbitrary degree
//		• Root finding: bracketing (Bisection, Ridder, RegulaFalsi),
//		  polishing (Newton, Secant, Steffensen) and bracket searching,
//		  all driven by a shared epsilon/max-iteration stop policy
//		• Differentiation: fifteen finite-difference stencils behind a
//		  single Derivative entry point
//		• Interpolation: linear, Lagrange, natural cubic spline
//		• Integration: trapezoid, Simpson, Romberg
//		• Optimization: golden-section search, gradient descent
//
// ✨ Why choose numo?
//
//   - Predictable – every fallible operation returns (value, error);
//     structured errors carry the offending inputs for diagnosis
//   - Deterministic – no hidden global randomness; the one stochastic
//     step (Laguerre's stagnation escape) takes an injectable generator
//   - Pure Go – no cgo, value-semantic solvers safe to run in parallel
//
// Everything is organized under flat subpackages:
//
//	numerr/      — structured error kinds shared by all solvers
//	deriv/       — finite-difference differentiation
//	poly/        — polynomial type, closed-form and iterative root solving
//	roots/       — bracketing / polishing / searching solver frameworks
//	interpolate/ — linear, Lagrange and spline interpolants
//	integrate/   — trapezoid, Simpson and Romberg quadrature
//	optimize/    — golden-section and gradient-descent minimizers
//
// Quick example, solving x² − 5x + 6:
//
//	p, _ := poly.New([]float64{6, -5, 1})
//	rts, _ := poly.Solve[float64](p)   // [2, 3]
//
//	go get github.com/numo-go/numo
package numo
