package roots_test

import (
	"fmt"
	"math"

	"github.com/numo-go/numo/roots"
)

// ExampleFSolve brackets the positive root of x² − 2 and bisects to
// it.
func ExampleFSolve() {
	f := func(x float64) float64 { return x*x - 2 }

	s, err := roots.NewBisection(f, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := roots.FSolve(s, roots.WithEpsilon(1e-10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", res.Root)
	// Output:
	// 1.414214
}

// ExampleFDFSolve polishes a guess with Newton's method using an
// exact derivative.
func ExampleFDFSolve() {
	f := func(x float64) float64 { return math.Cos(x) - x }
	df := func(x float64) float64 { return -math.Sin(x) - 1 }

	s, err := roots.NewNewton(f, df, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := roots.FDFSolve[float64](s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", res.Root)
	// Output:
	// 0.739085
}

// ExampleSearch grows an interval until it brackets a distant root,
// then hands it to a bracketing solve.
func ExampleSearch() {
	f := func(x float64) float64 { return x - 42 }

	up, err := roots.NewSearchUp(f, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	b, err := roots.Search(up)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := roots.NewBisection(f, b.Lo, b.Hi)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := roots.FSolve(s, roots.WithEpsilon(1e-10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.1f\n", res.Root)
	// Output:
	// 42.0
}
