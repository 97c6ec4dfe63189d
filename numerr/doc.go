// Package numerr defines the structured error type shared by every
// numo solver.
//
// # Why a dedicated error package?
//
// Numerical routines fail in three distinct ways, and callers usually
// need to distinguish them programmatically:
//
//   - Bad input        — a precondition was violated before any numeric
//     work happened (tolerance ≤ 0, insufficient polynomial order,
//     malformed bounds). Deterministic and always the caller's bug.
//   - Degeneracy       — the computation itself hit an ill-posed spot: a
//     near-zero denominator in a closed-form formula, a non-finite
//     intermediate value.
//   - Non-convergence  — an iterative method exhausted its iteration
//     budget without meeting the requested tolerance.
//
// numerr models this taxonomy as a Kind carried by a single Error
// struct. Each Kind has a matching sentinel so call sites stay on the
// standard errors.Is path:
//
//	if errors.Is(err, numerr.ErrNoConvergence) { ... }
//
// An Error additionally carries the operation name that produced it and
// an optional method-specific Payload (last argument, step size, the
// roots recovered before the failure, ...) sufficient to reconstruct
// what went wrong without re-running the solve.
//
// Errors are ordinary values: nothing in numo panics on numerical
// failure, and no Error ever terminates the process.
package numerr
