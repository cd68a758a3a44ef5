package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

const (
	backendTCell = "tcell"
	backendTea   = "tea"
)

// Options is what a runner needs to start the rain.
type Options struct {
	Backend string
	Seed    uint64
	NoIntro bool
	Flat    bool
	Logger  *log.Logger
}

type Deps struct {
	RunTerminal func(ctx context.Context, opts Options) error
	RunTUI      func(ctx context.Context, opts Options) error
	OpenLog     func(path string, logger *log.Logger) (io.Closer, error)
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		RunTerminal: defaultRunTerminal,
		RunTUI:      defaultRunTUI,
		OpenLog:     openDebugLog,
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	var backend string
	var seed uint64
	var noIntro bool
	var flat bool
	var debugPath string

	c := &cobra.Command{
		Use:          "matrix-rain",
		Short:        "Fill the terminal with falling green glyphs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if backend != backendTCell && backend != backendTea {
				return fmt.Errorf("invalid --backend %q (expected %s or %s)", backend, backendTCell, backendTea)
			}

			logger := log.New(io.Discard)
			if debugPath != "" {
				if deps.OpenLog == nil {
					return fmt.Errorf("deps.OpenLog is nil")
				}
				logger = log.NewWithOptions(io.Discard, log.Options{
					Level:           log.DebugLevel,
					ReportTimestamp: true,
					TimeFormat:      time.StampMilli,
				})
				f, err := deps.OpenLog(debugPath, logger)
				if err != nil {
					return fmt.Errorf("failed to open debug log: %w", err)
				}
				defer f.Close()
			}

			if !cmd.Flags().Changed("seed") {
				seed = uint64(deps.Now().UnixNano())
			}
			opts := Options{
				Backend: backend,
				Seed:    seed,
				NoIntro: noIntro,
				Flat:    flat,
				Logger:  logger,
			}
			if err := run(cmd.Context(), deps, opts); err != nil {
				if screen.IsInitError(err) {
					fmt.Fprintln(deps.Stderr, "hint: run from an interactive terminal, or try `--backend tea`")
				}
				return err
			}
			return nil
		},
	}

	c.Flags().StringVarP(&backend, "backend", "b", backendTCell, "drawing backend: tcell or tea")
	c.Flags().Uint64Var(&seed, "seed", 0, "random seed; an explicit 0 is used as is (default: time based)")
	c.Flags().BoolVar(&noIntro, "no-intro", false, "skip the binary intro")
	c.Flags().BoolVar(&flat, "flat", false, "use the two-color fallback even when 256 colors are available")
	c.Flags().StringVar(&debugPath, "debug", "", "write a debug log to this file")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

func openDebugLog(path string, logger *log.Logger) (io.Closer, error) {
	return tea.LogToFileWith(path, "rain", logger)
}
