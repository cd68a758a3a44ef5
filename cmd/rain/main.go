package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fchimpan/gh-matrix-rain/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cmd.NewRootCmd(cmd.DefaultDeps())
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
