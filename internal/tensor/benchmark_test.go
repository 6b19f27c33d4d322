package tensor

import (
	"fmt"
	"testing"

	"github.com/born-ml/grad/internal/parallel"
	"github.com/born-ml/grad/internal/random"
)

func BenchmarkTensorCreation(b *testing.B) {
	shape := Shape{100, 100}
	src := random.New(1)

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Zeros(shape)
		}
	})

	b.Run("Randn", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Randn(src, shape)
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape1 := Shape{100, 1, 100}
	shape2 := Shape{100, 100}

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.ComputeStrides()
		}
	})

	b.Run("BroadcastShapes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = BroadcastShapes(shape1, shape2)
		}
	})
}

func BenchmarkTensorElementWise(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		a, _ := Ones(Shape{size})
		c, _ := Ones(Shape{size})

		b.Run(fmt.Sprintf("Add-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = a.Add(c)
			}
		})

		b.Run(fmt.Sprintf("Mul-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = a.Mul(c)
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	src := random.New(1)

	for _, size := range []int{16, 64, 128} {
		a, _ := Randn(src, Shape{size, size})
		c, _ := Randn(src, Shape{size, size})

		blas := DefaultMatMulConfig()
		blas.BLASThreshold = 1
		blocked := DefaultMatMulConfig()
		blocked.BLASThreshold = 0
		sequential := blocked
		sequential.Parallel = parallel.Sequential()

		for name, cfg := range map[string]MatMulConfig{"blas": blas, "blocked": blocked, "sequential": sequential} {
			b.Run(fmt.Sprintf("%s-%dx%d", name, size, size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = a.MatMulWith(c, cfg)
				}
			})
		}
	}
}

func BenchmarkTranspose(b *testing.B) {
	t, _ := Randn(random.New(1), Shape{100, 100})

	for i := 0; i < b.N; i++ {
		_, _ = t.Transpose()
	}
}

func BenchmarkReduce(b *testing.B) {
	t, _ := Randn(random.New(1), Shape{100, 100})

	b.Run("Sum0", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = t.Sum(0, false)
		}
	})

	b.Run("Sum1", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = t.Sum(1, false)
		}
	})
}
