package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/born-ml/grad/internal/parallel"
	"github.com/born-ml/grad/tensor"
	"github.com/google/subcommands"
)

type MatMulCommand struct {
	m, k, n       int
	seed          int64
	blasThreshold int
	blockSize     int
	workers       int
	check         bool
}

var _ subcommands.Command = (*MatMulCommand)(nil)

func (*MatMulCommand) Name() string {
	return "matmul"
}

func (*MatMulCommand) Synopsis() string {
	return "Multiply two random matrices and report timing"
}

func (*MatMulCommand) Usage() string {
	return ``
}

func (c *MatMulCommand) SetFlags(f *flag.FlagSet) {
	def := tensor.DefaultMatMulConfig()

	f.IntVar(&c.m, "m", 256, "Rows of the left operand")
	f.IntVar(&c.k, "k", 256, "Columns of the left operand and rows of the right operand")
	f.IntVar(&c.n, "n", 256, "Columns of the right operand")
	f.Int64Var(&c.seed, "seed", 1, "Seed for the operand values")
	f.IntVar(&c.blasThreshold, "blas-threshold", def.BLASThreshold, "Minimum m*k*n routed through BLAS (0 disables)")
	f.IntVar(&c.blockSize, "block", def.BlockSize, "Tile edge of the blocked kernel")
	f.IntVar(&c.workers, "workers", def.Parallel.NumWorkers, "Worker goroutines for the blocked kernel (1 = sequential)")
	f.BoolVar(&c.check, "check", false, "Compare against the other kernel")
}

func (c *MatMulCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *MatMulCommand) executeErr(_ context.Context) error {
	src := tensor.NewSource(c.seed)
	a, err := randomTensor(src, c.m, c.k)
	if err != nil {
		return fmt.Errorf("while building left operand: %w", err)
	}
	b, err := randomTensor(src, c.k, c.n)
	if err != nil {
		return fmt.Errorf("while building right operand: %w", err)
	}

	cfg := tensor.DefaultMatMulConfig()
	cfg.BLASThreshold = c.blasThreshold
	cfg.BlockSize = c.blockSize
	if c.workers > 1 {
		cfg.Parallel.NumWorkers = c.workers
	} else {
		cfg.Parallel = parallel.Sequential()
	}

	start := time.Now()
	out, err := a.MatMulWith(b, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	kernel := "blocked"
	if cfg.BLASThreshold > 0 && c.m*c.k*c.n >= cfg.BLASThreshold {
		kernel = "blas"
	}
	log.Printf("[%d,%d] @ [%d,%d] -> %v via %s in %s", c.m, c.k, c.k, c.n, out.Shape(), kernel, elapsed)

	if c.check {
		other := cfg
		if kernel == "blas" {
			other.BLASThreshold = 0
		} else {
			other.BLASThreshold = 1
		}
		ref, err := a.MatMulWith(b, other)
		if err != nil {
			return err
		}
		if !out.AllClose(ref, 1e-9) {
			return fmt.Errorf("kernels disagree")
		}
		log.Printf("check: kernels agree")
	}
	return nil
}

func randomTensor(src *tensor.Source, rows, cols int) (*tensor.Tensor, error) {
	return tensor.Rand(src, tensor.Shape{rows, cols}, -1, 1)
}
