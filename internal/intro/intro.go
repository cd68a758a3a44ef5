// Package intro draws the binary flourish shown before the rain starts.
package intro

import (
	"context"
	"time"

	"github.com/fchimpan/gh-matrix-rain/internal/clock"
	"github.com/fchimpan/gh-matrix-rain/internal/glyph"
	"github.com/fchimpan/gh-matrix-rain/internal/palette"
	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

const (
	Timeout    = 3 * time.Second
	FrameDelay = 40 * time.Millisecond
)

type Reason int

const (
	ReasonTimeout Reason = iota
	ReasonKey
	ReasonCanceled
	// ReasonInterrupt means ctrl+c: the caller should exit, not start the rain.
	ReasonInterrupt
)

func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonKey:
		return "key"
	case ReasonCanceled:
		return "canceled"
	case ReasonInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Sequence fills the screen with random 0s and 1s until Timeout has passed
// since start.
type Sequence struct {
	glyphs  *glyph.Source
	attr    palette.Attr
	start   time.Time
	timeout time.Duration
}

func New(rng glyph.Rand, attr palette.Attr, start time.Time) *Sequence {
	return &Sequence{
		glyphs:  glyph.NewSource(rng, glyph.Binary),
		attr:    attr,
		start:   start,
		timeout: Timeout,
	}
}

// Fill paints every cell of s. Draw failures are ignored.
func (q *Sequence) Fill(s screen.Surface) {
	rows, cols := s.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			_ = s.DrawCell(row, col, q.glyphs.Next(), q.attr)
		}
	}
}

func (q *Sequence) Expired(now time.Time) bool {
	return now.Sub(q.start) > q.timeout
}

type Result struct {
	Reason  Reason
	Frames  int
	Elapsed time.Duration
}

// Run shows the sequence on term until a key arrives, the timeout passes or
// ctx is done, then clears the screen. The key that ends the intro is
// consumed; ctrl+c is reported as ReasonInterrupt.
func Run(ctx context.Context, term screen.Terminal, q *Sequence, clk clock.Clock) Result {
	res := Result{}
	defer term.Clear()

	for {
		if ctx.Err() != nil {
			res.Reason = ReasonCanceled
			break
		}

		q.Fill(term)
		term.Flush()
		clk.Sleep(FrameDelay)
		res.Frames++

		if k, ok := term.PollKey(); ok {
			res.Reason = ReasonKey
			if k == screen.KeyInterrupt {
				res.Reason = ReasonInterrupt
			}
			break
		}
		if q.Expired(clk.Now()) {
			res.Reason = ReasonTimeout
			break
		}
	}

	res.Elapsed = clk.Now().Sub(q.start)
	return res
}
