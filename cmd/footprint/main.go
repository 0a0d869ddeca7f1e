// Command footprint computes greenhouse-gas footprints and renders PDF
// reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.String())
	root.SilenceErrors = true
	return root.ExecuteContext(ctx)
}
