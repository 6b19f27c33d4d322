package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/grad/autodiff"
	"github.com/born-ml/grad/internal/dataset"
	"github.com/born-ml/grad/nn"
	"github.com/born-ml/grad/optim"
	"github.com/google/subcommands"
)

type TrainCommand struct {
	dataFile    string
	labelColumn int
	header      bool
	limit       int

	hidden    string
	seed      int64
	sameSeed  bool
	xavier    bool
	optimizer string
	lr        float64
	momentum  float64
	epochs    int
	logEvery  int

	graphFile string
	trace     bool
}

var _ subcommands.Command = (*TrainCommand)(nil)

func (*TrainCommand) Name() string {
	return "train"
}

func (*TrainCommand) Synopsis() string {
	return "Train an MLP with squared-error loss"
}

func (*TrainCommand) Usage() string {
	return `train [flags]
Without --data, trains on four built-in samples with ±1 targets.
`
}

func (c *TrainCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataFile, "data", "", "Path to a CSV file of samples (default: built-in samples)")
	f.IntVar(&c.labelColumn, "label-column", 0, "CSV column holding the target; negative counts from the end")
	f.BoolVar(&c.header, "header", false, "Skip the first CSV row")
	f.IntVar(&c.limit, "limit", 0, "Use at most this many samples (0 = all)")

	f.StringVar(&c.hidden, "layers", "4,4,1", "Comma-separated layer widths, last one is the output width")
	f.Int64Var(&c.seed, "seed", 42, "Initialization seed")
	f.BoolVar(&c.sameSeed, "same-seed-neurons", false, "Seed every neuron of a layer identically")
	f.BoolVar(&c.xavier, "xavier", false, "Use Xavier initialization instead of U[-1, 1)")
	f.StringVar(&c.optimizer, "optimizer", "sgd", "Optimizer: sgd or adam")
	f.Float64Var(&c.lr, "lr", 0.05, "Learning rate")
	f.Float64Var(&c.momentum, "momentum", 0, "SGD momentum")
	f.IntVar(&c.epochs, "epochs", 100, "Number of full-batch steps")
	f.IntVar(&c.logEvery, "log-every", 10, "Log the loss every N epochs")

	f.StringVar(&c.graphFile, "graph", "", "Write the final loss graph to this file")
	f.BoolVar(&c.trace, "trace", false, "Trace the first backward pass")
}

func (c *TrainCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *TrainCommand) executeErr(ctx context.Context) error {
	ds, err := c.loadData()
	if err != nil {
		return fmt.Errorf("while loading data: %w", err)
	}
	if ds.Width() == 0 {
		return fmt.Errorf("dataset has no feature columns besides the label")
	}

	sizes, err := parseSizes(c.hidden)
	if err != nil {
		return fmt.Errorf("while parsing --layers: %w", err)
	}
	if sizes[len(sizes)-1] != 1 {
		return fmt.Errorf("output width must be 1 for scalar targets, got %d", sizes[len(sizes)-1])
	}

	var opts []nn.Option
	if c.xavier {
		opts = append(opts, nn.WithXavier())
	}
	var model *nn.MLP
	if c.sameSeed {
		model = nn.NewMLP(ds.Width(), sizes, c.seed, opts...)
	} else {
		model = nn.NewMLPFrom(ds.Width(), sizes, nn.NewSource(c.seed), opts...)
	}
	log.Printf("Model: %s (%d parameters), %d samples", model, nn.NumParameters(model), ds.Len())

	opt, err := c.newOptimizer(model.Parameters())
	if err != nil {
		return err
	}

	var loss *autodiff.Value
	for epoch := 0; epoch < c.epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		loss, err = batchLoss(model, ds)
		if err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}

		opt.ZeroGrad()
		if c.trace && epoch == 0 {
			loss.Backward(autodiff.WithLogger(log.Default()))
		} else {
			loss.Backward()
		}
		opt.Step()

		if c.logEvery > 0 && (epoch%c.logEvery == 0 || epoch == c.epochs-1) {
			log.Printf("epoch %d: loss %.6f", epoch, loss.Data)
		}
	}

	if err := c.report(model, ds); err != nil {
		return err
	}

	if c.graphFile != "" && loss != nil {
		if err := writeGraphFile(c.graphFile, loss); err != nil {
			return fmt.Errorf("while writing graph: %w", err)
		}
	}
	return nil
}

func (c *TrainCommand) loadData() (*dataset.Dataset, error) {
	if c.dataFile == "" {
		return &dataset.Dataset{
			Labels:   []float64{1, -1, -1, 1},
			Features: [][]float64{{2, 3, -1}, {3, -1, 0.5}, {0.5, 1, 1}, {1, 1, -1}},
		}, nil
	}
	ds, err := dataset.ReadCSVFile(c.dataFile, c.labelColumn, c.header)
	if err != nil {
		return nil, err
	}
	ds.Limit(c.limit)
	return ds, nil
}

func (c *TrainCommand) newOptimizer(params []*autodiff.Value) (optim.Optimizer, error) {
	switch c.optimizer {
	case "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: c.lr, Momentum: c.momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{LR: c.lr}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", c.optimizer)
	}
}

func (c *TrainCommand) report(model *nn.MLP, ds *dataset.Dataset) error {
	outs, err := model.Forward(ds.Leaves())
	if err != nil {
		return err
	}
	for i, out := range outs {
		log.Printf("sample %d: target %g, prediction %.4f", i, ds.Labels[i], out[0].Data)
	}
	return nil
}

// batchLoss builds the squared error of the model over every sample.
func batchLoss(model *nn.MLP, ds *dataset.Dataset) (*autodiff.Value, error) {
	outs, err := model.Forward(ds.Leaves())
	if err != nil {
		return nil, err
	}
	preds := make([]*autodiff.Value, len(outs))
	for i, out := range outs {
		preds[i] = out[0]
	}
	return nn.SumSquaredError(preds, ds.Targets())
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer width %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func writeGraphFile(path string, root *autodiff.Value) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := autodiff.WriteGraph(f, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
