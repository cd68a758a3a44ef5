package rain

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fchimpan/gh-matrix-rain/internal/clock"
	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

const (
	FPS        = 30
	FrameDelay = time.Second / FPS
)

// IsQuitKey reports whether k ends the main loop.
func IsQuitKey(k screen.Key) bool {
	return k == screen.KeyQuit || k == screen.KeyInterrupt
}

type DriverConfig struct {
	Clock      clock.Clock
	FrameDelay time.Duration
	Logger     *log.Logger
}

// Driver runs the Engine against a Terminal at a fixed frame rate.
type Driver struct {
	term   screen.Terminal
	engine *Engine
	cfg    DriverConfig
}

func NewDriver(term screen.Terminal, engine *Engine, cfg DriverConfig) *Driver {
	if cfg.Clock.Now == nil || cfg.Clock.Sleep == nil {
		cfg.Clock = clock.System()
	}
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = FrameDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Driver{term: term, engine: engine, cfg: cfg}
}

// Run loops until a quit key arrives or ctx is done. Cancellation is only
// observed between frames. Run always returns nil.
func (d *Driver) Run(ctx context.Context) error {
	logger := d.cfg.Logger
	logger.Debug("rain started", "rows", d.engine.Rows, "cols", d.engine.Cols)
	start := d.cfg.Clock.Now()

	for {
		if ctx.Err() != nil {
			logger.Debug("rain stopped", "reason", "canceled", "frames", d.engine.Frame(), "elapsed", d.cfg.Clock.Now().Sub(start))
			return nil
		}
		if k, ok := d.term.PollKey(); ok && IsQuitKey(k) {
			logger.Debug("rain stopped", "reason", "key", "key", k, "frames", d.engine.Frame(), "elapsed", d.cfg.Clock.Now().Sub(start))
			return nil
		}

		d.engine.Tick(d.term)
		d.term.Flush()
		d.cfg.Clock.Sleep(d.cfg.FrameDelay)
	}
}
