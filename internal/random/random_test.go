package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uniform(-1, 1), b.Uniform(-1, 1), "draw %d", i)
	}
}

func TestSource_Reseed(t *testing.T) {
	s := New(7)
	first := []float64{s.Uniform(0, 1), s.Uniform(0, 1), s.Uniform(0, 1)}

	s.Seed(7)
	again := []float64{s.Uniform(0, 1), s.Uniform(0, 1), s.Uniform(0, 1)}

	assert.Equal(t, first, again)
	assert.Equal(t, int64(7), s.CurrentSeed())
}

func TestSource_UniformRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 10000; i++ {
		v := s.Uniform(-1, 1)
		if v < -1 || v >= 1 {
			t.Fatalf("Uniform(-1, 1) = %v, out of range", v)
		}
	}
}

func TestSource_Normal(t *testing.T) {
	s := New(3)
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += s.Normal(5, 0.5)
	}
	assert.InDelta(t, 5.0, sum/n, 0.05)
}
