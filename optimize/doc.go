// Package optimize locates extrema of scalar functions of one variable.
//
// Overview
//
// Two methods are provided:
//
//   - GoldenSection - derivative-free bracket shrinking. Given bounds
//     containing a single extremum, each pass cuts the bracket by the
//     golden ratio. Robust, needs no gradient.
//   - GradientDescent - fixed learning-rate descent from an initial
//     guess. Takes an explicit derivative, or falls back to a numerical
//     one when none is supplied.
//
// Both search for a minimum by default; WithMode(Maximize) flips the
// objective. Results carry the located point, the objective value there
// and a Converged flag:
//
//	res, err := optimize.GoldenSection(func(x float64) float64 {
//		return (x - 2) * (x - 2)
//	}, 0, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// res.X is close to 2.
//
// Termination and failure policy
//
// GoldenSection stops when the bracket width drops below the scale-aware
// threshold eps*|x| + eps/2. GradientDescent stops when the gradient
// magnitude drops below eps. Exhausting the iteration cap is not an
// error for either method: the best estimate so far is returned with
// Converged set to false. Invalid input (nil objective, equal bounds,
// non-finite iterates) is reported as a *numerr.Error.
//
// Complexity
//
// GoldenSection performs one objective evaluation per pass and shrinks
// the bracket by a factor of 1/phi each time. GradientDescent performs
// one gradient evaluation per pass; with the numerical fallback each
// gradient costs several objective evaluations.
package optimize
