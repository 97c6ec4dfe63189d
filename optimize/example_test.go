package optimize_test

import (
	"fmt"
	"log"
	"math"

	"github.com/numo-go/numo/optimize"
)

func ExampleGoldenSection() {
	res, err := optimize.GoldenSection(func(x float64) float64 {
		return (x - 2) * (x - 2)
	}, 0, 5)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.3f\n", res.X)
	// Output:
	// 2.000
}

func ExampleGoldenSection_maximize() {
	res, err := optimize.GoldenSection(math.Sin, 0, math.Pi,
		optimize.WithMode(optimize.Maximize))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.3f\n", res.X)
	// Output:
	// 1.571
}

func ExampleGradientDescent() {
	res, err := optimize.GradientDescent(
		func(x float64) float64 { return (x - 3) * (x - 3) },
		func(x float64) float64 { return 2 * (x - 3) },
		0,
		optimize.WithLearningRate(0.1),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.3f\n", res.X)
	// Output:
	// 3.000
}
