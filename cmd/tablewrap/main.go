package main

import (
	"context"
	"os"

	"github.com/matzehuels/tablewrap/internal/cli"
)

func main() {
	if err := run(context.Background()); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogWarn)
	return c.RootCommand().ExecuteContext(ctx)
}
