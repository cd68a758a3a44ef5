package cmd

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/fchimpan/gh-matrix-rain/internal/clock"
	"github.com/fchimpan/gh-matrix-rain/internal/intro"
	"github.com/fchimpan/gh-matrix-rain/internal/palette"
	"github.com/fchimpan/gh-matrix-rain/internal/rain"
	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

func defaultRunTerminal(ctx context.Context, opts Options) error {
	term, err := screen.NewTCell()
	if err != nil {
		return err
	}
	defer term.Close()
	return playTerminal(ctx, term, opts, clock.System())
}

// playTerminal runs the intro and then the rain on term until a quit key or
// ctx cancellation. The grid size is fixed at startup.
func playTerminal(ctx context.Context, term screen.Terminal, opts Options, clk clock.Clock) error {
	logger := opts.logger()

	term.HideCursor()
	term.Clear()
	ramp := palette.Build(term, palette.Options{Flat: opts.Flat})
	rows, cols := term.Size()
	logger.Debug("terminal ready",
		"backend", backendTCell,
		"rows", rows,
		"cols", cols,
		"custom_colors", term.CustomColors(),
		"flat", opts.Flat,
		"seed", opts.Seed,
	)

	rng := rain.NewRand(opts.Seed)
	if !opts.NoIntro {
		res := intro.Run(ctx, term, intro.New(rng, ramp.Accent, clk.Now()), clk)
		logger.Debug("intro finished", "reason", res.Reason, "frames", res.Frames, "elapsed", res.Elapsed)
		if res.Reason == intro.ReasonCanceled || res.Reason == intro.ReasonInterrupt {
			return nil
		}
	}

	engine := rain.NewEngine(rows, cols, rng, ramp)
	d := rain.NewDriver(term, engine, rain.DriverConfig{Clock: clk, Logger: logger})
	return d.Run(ctx)
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}
