package integrate

import (
	"math"
	"testing"
)

func BenchmarkTrapezoid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Trapezoid(math.Sin, 0, math.Pi, WithTolerance(1e-8))
	}
}

func BenchmarkSimpson(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Simpson(math.Sin, 0, math.Pi, WithTolerance(1e-8))
	}
}

func BenchmarkRomberg(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Romberg(math.Sin, 0, math.Pi, WithTolerance(1e-8))
	}
}
