package cmd

import (
	"context"
	"fmt"
)

func run(ctx context.Context, deps Deps, opts Options) error {
	if deps.RunTerminal == nil {
		return fmt.Errorf("deps.RunTerminal is nil")
	}
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}

	var err error
	switch opts.Backend {
	case backendTea:
		err = deps.RunTUI(ctx, opts)
	case backendTCell, "":
		err = deps.RunTerminal(ctx, opts)
	default:
		return fmt.Errorf("unknown backend %q", opts.Backend)
	}
	if err != nil {
		return fmt.Errorf("failed to run %s backend: %w", opts.Backend, err)
	}
	return nil
}
