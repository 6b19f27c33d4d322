package tensor

import (
	"fmt"
	"runtime"

	"github.com/born-ml/grad/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MatMulConfig controls how MatMul dispatches its work.
type MatMulConfig struct {
	// BLASThreshold is the minimum m*k*n work size routed through gonum's BLAS.
	// Zero or negative disables the BLAS path.
	BLASThreshold int
	// BlockSize is the tile edge of the blocked kernel used below the threshold.
	BlockSize int
	// Parallel controls fan-out over output row blocks in the blocked kernel.
	Parallel parallel.Config
}

// DefaultMatMulConfig returns the configuration used by MatMul.
func DefaultMatMulConfig() MatMulConfig {
	n := runtime.NumCPU()
	return MatMulConfig{
		BLASThreshold: 64 * 64 * 64,
		BlockSize:     64,
		Parallel: parallel.Config{
			Enabled:      n > 1,
			NumWorkers:   n,
			MinChunkSize: 2, // Each item is a whole row block.
		},
	}
}

// MatMul returns the matrix product t @ other.
//
// Both operands must have rank 2 (ErrRank) and t's column count must equal
// other's row count (ErrShapeMismatch). For (M, K) @ (K, N) the result is (M, N).
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	return t.MatMulWith(other, DefaultMatMulConfig())
}

// MatMulWith is MatMul with an explicit dispatch configuration.
func (t *Tensor) MatMulWith(other *Tensor, cfg MatMulConfig) (*Tensor, error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, fmt.Errorf("matmul: only 2D tensors supported, got %dD and %dD: %w",
			len(t.shape), len(other.shape), ErrRank)
	}

	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, fmt.Errorf("matmul: [%d,%d] @ [%d,%d]: %w", m, k, kAlt, n, ErrShapeMismatch)
	}

	out := newUnchecked(Shape{m, n})
	if cfg.BLASThreshold > 0 && m*k*n >= cfg.BLASThreshold {
		matmulBLAS(out.data, t.data, other.data, m, k, n)
	} else {
		matmulBlocked(out.data, t.data, other.data, m, k, n, cfg)
	}
	return out, nil
}

// matmulBLAS computes C = A @ B through gonum. A and B are only read.
func matmulBLAS(c, a, b []float64, m, k, n int) {
	dst := mat.NewDense(m, n, c)
	dst.Mul(mat.NewDense(m, k, a), mat.NewDense(k, n, b))
}

// matmulBlocked computes C = A @ B with square tiles.
// Row blocks of C are independent, so they are distributed across workers;
// every element of C is written by exactly one iteration.
func matmulBlocked(c, a, b []float64, m, k, n int, cfg MatMulConfig) {
	bs := cfg.BlockSize
	if bs <= 0 {
		bs = 64
	}
	rowBlocks := (m + bs - 1) / bs

	parallel.For(rowBlocks, func(blk int) {
		i0 := blk * bs
		iMax := min(i0+bs, m)
		for k0 := 0; k0 < k; k0 += bs {
			kMax := min(k0+bs, k)
			for j0 := 0; j0 < n; j0 += bs {
				jMax := min(j0+bs, n)
				for i := i0; i < iMax; i++ {
					row := c[i*n+j0 : i*n+jMax]
					for kk := k0; kk < kMax; kk++ {
						floats.AddScaled(row, a[i*k+kk], b[kk*n+j0:kk*n+jMax])
					}
				}
			}
		}
	}, cfg.Parallel)
}
