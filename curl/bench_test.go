package curl_test

import (
	"math/rand"
	"testing"

	"github.com/solenoidal/stencil/curl"
	"github.com/solenoidal/stencil/field"
)

// BenchmarkApply measures the 2D curl sweep on a 512×512 field,
// serial and with four workers.
func BenchmarkApply(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(42))
	src, _ := field.NewScalar2D[float64](n, n)
	for i := range src.Data {
		src.Data[i] = rng.Float64()
	}
	dst, _ := field.NewVector2D[float64](n, n)

	b.Run("serial", func(b *testing.B) {
		op := curl.New[float64]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = op.Apply(dst, src, 0.5)
		}
	})
	b.Run("workers4", func(b *testing.B) {
		op := curl.New[float64](curl.WithWorkers(4))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = op.Apply(dst, src, 0.5)
		}
	})
}
