// Package interpolate constructs continuous interpolants from discrete
// sample points.
//
// Overview
//
// Each constructor takes a slice of Point values with strictly increasing
// X coordinates and returns a plain func(float64) float64 closure over a
// private copy of the data:
//
//   - Linear   - piecewise linear, slope-extrapolated outside the range.
//   - Lagrange - the unique degree n-1 polynomial through all n points,
//     valid on the whole real line.
//   - Spline   - a natural cubic spline with zero second derivative at
//     both ends; the boundary segments extend beyond the sample range.
//
// The returned closures are pure and safe for concurrent use. Mutating
// the input slice after construction does not affect them.
//
//	f, err := interpolate.Spline([]interpolate.Point{
//		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 8}, {X: 3, Y: 27},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	y := f(1.5)
//
// Errors
//
//   - ErrTooFewPoints    - fewer than two points (three for Spline).
//   - ErrUnorderedPoints - X values not strictly increasing.
//
// Complexity
//
// Linear and Spline evaluate in O(log n) via binary search over the
// segments; Spline construction is O(n). Lagrange evaluates in O(n^2).
package interpolate
