package poly_test

import (
	"testing"

	"github.com/numo-go/numo/poly"
)

func BenchmarkEvaluate(b *testing.B) {
	p := poly.New([]float64{3, -2, 7, 0.5, -1, 1, 2, -4, 6, 1})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.At(1.7)
	}
}

func BenchmarkSolve_Cubic(b *testing.B) {
	p := poly.FromRoots(-2.0, 1.0, 3.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := poly.Solve[float64](p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_DegreeTen(b *testing.B) {
	coeffs := make([]complex128, 11)
	coeffs[0] = -1
	coeffs[10] = 1
	p := poly.New(coeffs)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := poly.Solve[complex128](p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveBatch(b *testing.B) {
	ps := make([]poly.Polynomial[float64], 16)
	for i := range ps {
		ps[i] = poly.FromRoots(-3.0, -1.0, float64(i), float64(i)+2.5)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := poly.SolveBatch[float64](ps); err != nil {
			b.Fatal(err)
		}
	}
}
