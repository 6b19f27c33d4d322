// Command born-grad trains small MLPs with the scalar autodiff engine and
// benchmarks the dense matrix multiply.
//
// To train on the built-in four-sample set: `go run ./cmd/born-grad train`
//
// To train on a CSV file: `go run ./cmd/born-grad train --data=samples.csv --label-column=0 --header`
//
// To time a product: `go run ./cmd/born-grad matmul --m=512 --k=512 --n=512`
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

const version = "v0.1.0-dev"

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&TrainCommand{}, "")
	subcommands.Register(&MatMulCommand{}, "")
	subcommands.Register(&VersionCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

type VersionCommand struct{}

var _ subcommands.Command = (*VersionCommand)(nil)

func (*VersionCommand) Name() string {
	return "version"
}

func (*VersionCommand) Synopsis() string {
	return "Print the version"
}

func (*VersionCommand) Usage() string {
	return ``
}

func (*VersionCommand) SetFlags(*flag.FlagSet) {}

func (*VersionCommand) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Printf("born-grad %s\n", version)
	return subcommands.ExitSuccess
}
