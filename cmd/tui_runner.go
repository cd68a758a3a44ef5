package cmd

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/muesli/termenv"

	"github.com/fchimpan/gh-matrix-rain/internal/tui"
)

func defaultRunTUI(ctx context.Context, opts Options) error {
	logger := opts.logger()

	custom := term.FromEnv().Is256ColorSupported()
	if !custom || opts.Flat {
		// Basic colors only.
		lipgloss.SetColorProfile(termenv.ANSI)
	}
	logger.Debug("terminal ready", "backend", backendTea, "custom_colors", custom, "flat", opts.Flat, "seed", opts.Seed)

	p := tea.NewProgram(
		tui.NewModel(tui.Config{
			Seed:         opts.Seed,
			CustomColors: custom,
			Flat:         opts.Flat,
			NoIntro:      opts.NoIntro,
			Logger:       logger,
		}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && isCleanStop(ctx, err) {
		logger.Debug("rain stopped", "reason", "canceled")
		return nil
	}
	return err
}

// isCleanStop reports whether err only reflects a signal or cancellation.
func isCleanStop(ctx context.Context, err error) bool {
	if errors.Is(err, tea.ErrInterrupted) {
		return true
	}
	return ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled)
}
