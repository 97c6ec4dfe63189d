// Package roots finds roots of one-dimensional functions through three
// cooperating solver families: bracketing methods that shrink a
// sign-changing interval, polishing methods that refine a single
// guess, and searching methods that acquire a bracket in the first
// place.
//
// Overview:
//
//   - Bracketing (Bisection, Ridder, RegulaFalsi): constructed with a
//     function and two bounds, each Iterate call narrows the interval
//     while keeping the sign change inside it. Driven by FSolve.
//   - Polishing (Newton, Secant, Steffensen): constructed with a
//     function, an optional derivative and a starting guess, each
//     Iterate call moves the guess. Generic over float64 and
//     complex128 so the same machinery polishes real and complex
//     roots. Driven by FDFSolve. When no derivative is supplied, a
//     Richardson-extrapolated central difference stands in.
//   - Searching (SearchUp, SearchDown, ExpandUp, ExpandDown,
//     ExpandOut, Subdivide): constructed with a function and two
//     bounds, each Iterate call moves or grows the interval looking
//     for a sign change. Driven by Search, which hands the resulting
//     bracket to FSolve.
//
// Solvers expose single iterations; the drivers own the loop, the
// single iteration counter, and the stop decision. The stop condition
// is checked before the first Iterate, so a solver whose initial state
// already satisfies the tolerance terminates after zero iterations.
//
// Termination and failure policy:
//
//   - FSolve stops when the interval width drops to eps·x + eps/2 or
//     the iteration budget runs out. FDFSolve stops when consecutive
//     guesses are within eps·|x| + eps/2 of each other, or on budget
//     exhaustion. For both, running out of iterations is NOT an error:
//     the result carries Converged == false and the best estimate, and
//     callers who care inspect the iteration count themselves.
//   - Search reports ErrNoBracket when the budget runs out without a
//     sign change; a missing bracket is unusable, unlike an imprecise
//     root.
//   - Secant silently skips an update when its denominator vanishes.
//     Steffensen does the same in its steady phase, but a vanishing
//     derivative in its Newton bootstrap is a hard
//     ErrVanishingDerivative, surfaced through the solver's Err
//     method and propagated by FDFSolve.
//
// Error handling (sentinel errors):
//
//   - ErrNilFunction: a constructor was given a nil function.
//   - ErrEqualBounds: lower and upper bounds coincide; reversed
//     bounds are swapped silently instead.
//   - ErrNilSolver: a driver was given a nil solver.
//   - ErrVanishingDerivative: Steffensen's bootstrap hit a near-zero
//     derivative.
//   - ErrNoBracket: Search exhausted its budget without a sign change.
//
// Example:
//
//	s, err := roots.NewBisection(f, 0, 5)
//	if err != nil { ... }
//	res, err := roots.FSolve(s, roots.WithEpsilon(1e-10))
//
// Complexity: every Iterate is O(1) function evaluations (at most
// four); drivers run at most MaxIterations iterations, O(1) memory
// throughout.
package roots
