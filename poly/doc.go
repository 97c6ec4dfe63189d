// Package poly provides a dense polynomial value type and a family of
// root finders: closed-form solvers for orders 1..3, Laguerre's method
// for higher orders, and a deflation orchestrator (Solve) that combines
// them to recover every root of a polynomial.
//
// Overview:
//
//   - Polynomial[T] stores coefficients in ascending degree (index i is
//     the coefficient of x^i) and is generic over real (float64) and
//     complex (complex128) scalars. Values are immutable; arithmetic
//     produces new polynomials.
//   - Linear, Quadratic and Cubic solve their orders analytically, in
//     complex arithmetic regardless of the coefficient type, and use
//     branch selection to avoid catastrophic cancellation.
//   - Laguerre finds one root of a polynomial of order ≥ 4, with a
//     random stagnation-escape step every tenth iteration and a Newton
//     polish on success.
//   - Solve orchestrates: closed forms for low orders, repeated
//     Laguerre plus deflation for high orders. SolveBatch runs Solve
//     over many polynomials concurrently.
//
// Root ordering and output type:
//
//   - Every solver returns roots sorted by real part ascending, then
//     imaginary part ascending; real parts closer than √tolerance are
//     treated as equal for the sort.
//   - The first type parameter selects the output scalar. With
//     R = float64, roots whose imaginary magnitude is ≥ √tolerance are
//     discarded; with R = complex128 all roots are returned:
//
//	real, err := poly.Solve[float64](p)      // real roots only
//	all, err  := poly.Solve[complex128](p)   // every root
//
// Determinism:
//
//   - Laguerre's escape step draws from an injectable *rand.Rand
//     (WithRand). The default is a fixed-seed generator, so repeated
//     runs produce identical root paths. SolveBatch derives an
//     independent stream per polynomial.
//
// Error handling:
//
//   - Precondition violations (tolerance ≤ 0, max iterations < 1,
//     wrong order, invalid divisor) are numerr.KindBadInput.
//   - Ill-formed quadratics and vanishing denominators are
//     numerr.KindDegenerate, carrying the offending coefficients.
//   - Laguerre iteration exhaustion is numerr.KindNoConvergence with
//     the last estimate and iteration count in the payload; Solve
//     propagates it immediately, aborting the whole multi-root solve.
//
// Complexity:
//
//   - Evaluate: O(n) per call (Horner). Arithmetic: O(n) add/sub,
//     O(n·m) multiply and divide.
//   - Solve: O(maxIter·n) per Laguerre root plus O(n) per deflation,
//     so O(n²·maxIter) worst case for a degree-n polynomial.
package poly
