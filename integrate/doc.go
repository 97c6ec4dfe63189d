// Package integrate provides one-dimensional numerical quadrature over
// a finite interval.
//
// Overview
//
// Three refinement schemes share a single driver:
//
//   - Trapezoid - composite trapezoid rule, doubling the interval count
//     each pass and reusing previous evaluations.
//   - Simpson   - composite Simpson rule over an even interval count,
//     doubled each pass.
//   - Romberg   - Richardson extrapolation of the trapezoid ladder; the
//     fastest of the three for smooth integrands.
//
// Each function drives its scheme until two successive estimates differ
// by less than the tolerance, or the iteration cap is hit:
//
//	v, err := integrate.Romberg(math.Sin, 0, math.Pi)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// v is close to 2.
//
// Behaviour is tuned with functional options: WithTolerance and
// WithMaxIterations. The option constructors panic on invalid input
// since a malformed option is a programming error at the call site.
//
// Errors
//
// Failures are reported as *numerr.Error values:
//
//   - numerr.KindBadInput      - nil integrand or lo >= hi.
//   - numerr.KindNonFinite     - an estimate became NaN or infinite.
//   - numerr.KindNoConvergence - the iteration cap was exhausted; the
//     payload carries the last estimate and the iteration count.
//
// Complexity
//
// Pass k of Trapezoid and Romberg costs 2^(k-1) integrand evaluations;
// Simpson recomputes its 2^k interval composite each pass. Romberg adds
// O(k) float work per pass for the extrapolation table.
package integrate
