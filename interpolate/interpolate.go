package interpolate

import (
	"errors"
	"sort"
)

// Point is a single (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// Sentinel errors returned by the interpolant constructors.
var (
	// ErrTooFewPoints signals that the sample set is too small for the
	// requested interpolant.
	ErrTooFewPoints = errors.New("interpolate: not enough points")

	// ErrUnorderedPoints signals that the X coordinates are not strictly
	// increasing.
	ErrUnorderedPoints = errors.New("interpolate: x values must be strictly increasing")
)

// validate checks the minimum count and strict X ordering, returning a
// private copy of the points on success.
func validate(points []Point, min int) ([]Point, error) {
	if len(points) < min {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return nil, ErrUnorderedPoints
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return cp, nil
}

// segment returns the index i of the interval [pts[i].X, pts[i+1].X]
// that x falls into, clamped to the boundary intervals so that points
// outside the sample range map onto the nearest segment.
func segment(pts []Point, x float64) int {
	i := sort.Search(len(pts), func(j int) bool { return pts[j].X > x }) - 1
	if i < 0 {
		i = 0
	}
	if i > len(pts)-2 {
		i = len(pts) - 2
	}
	return i
}

// Linear returns a piecewise linear interpolant through the given
// points. Inside the sample range each segment is the chord between its
// endpoints; outside the range the nearest segment's slope is extended.
// At least two points with strictly increasing X are required.
func Linear(points []Point) (func(float64) float64, error) {
	pts, err := validate(points, 2)
	if err != nil {
		return nil, err
	}
	return func(x float64) float64 {
		i := segment(pts, x)
		p, q := pts[i], pts[i+1]
		return p.Y + (q.Y-p.Y)*(x-p.X)/(q.X-p.X)
	}, nil
}

// Lagrange returns the unique polynomial of degree len(points)-1 passing
// through all points, evaluated by the classic product formula. The
// closure is valid on the whole real line, but high-degree fits are
// numerically delicate away from the sample range. At least two points
// with strictly increasing X are required.
func Lagrange(points []Point) (func(float64) float64, error) {
	pts, err := validate(points, 2)
	if err != nil {
		return nil, err
	}
	return func(x float64) float64 {
		var sum float64
		for i := range pts {
			term := pts[i].Y
			for j := range pts {
				if j == i {
					continue
				}
				term *= (x - pts[j].X) / (pts[i].X - pts[j].X)
			}
			sum += term
		}
		return sum
	}, nil
}

// Spline returns a natural cubic spline interpolant: a C2 piecewise
// cubic through the points with zero second derivative at both ends.
// Outside the sample range the boundary cubics are extended. At least
// three points with strictly increasing X are required.
func Spline(points []Point) (func(float64) float64, error) {
	pts, err := validate(points, 3)
	if err != nil {
		return nil, err
	}

	n := len(pts) - 1 // number of segments

	a := make([]float64, n+1)
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = pts[i].Y
		h[i] = pts[i+1].X - pts[i].X
	}
	a[n] = pts[n].Y

	alpha := make([]float64, n)
	for i := 1; i < n; i++ {
		alpha[i] = 3/h[i]*(a[i+1]-a[i]) - 3/h[i-1]*(a[i]-a[i-1])
	}

	// Thomas sweep for the tridiagonal system in c, with the natural
	// boundary c[0] = c[n] = 0.
	c := make([]float64, n+1)
	l := make([]float64, n+1)
	mu := make([]float64, n+1)
	z := make([]float64, n+1)
	l[0] = 1
	for i := 1; i < n; i++ {
		l[i] = 2*(pts[i+1].X-pts[i-1].X) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}

	b := make([]float64, n)
	d := make([]float64, n)
	for j := n - 1; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		b[j] = (a[j+1]-a[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3
		d[j] = (c[j+1] - c[j]) / (3 * h[j])
	}

	return func(x float64) float64 {
		i := segment(pts, x)
		dx := x - pts[i].X
		return a[i] + dx*(b[i]+dx*(c[i]+dx*d[i]))
	}, nil
}
