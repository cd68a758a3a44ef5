package intro

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/fchimpan/gh-matrix-rain/internal/clock"
	"github.com/fchimpan/gh-matrix-rain/internal/palette"
	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

var accent = palette.Attr{Slot: palette.SlotAccent, Bold: true}

func newRand() *rand.Rand { return rand.New(rand.NewPCG(11, 12)) }

// keyAfter delivers a single key once the clock reaches at.
type keyAfter struct {
	*screen.Canvas
	clk  clock.Clock
	at   time.Time
	sent bool
}

func (k *keyAfter) PollKey() (screen.Key, bool) {
	if !k.sent && !k.clk.Now().Before(k.at) {
		k.sent = true
		return "x", true
	}
	return "", false
}

func TestSequence_FillCoversGrid(t *testing.T) {
	t.Parallel()

	canvas := screen.NewCanvas(5, 7, true)
	q := New(newRand(), accent, time.Time{})
	q.Fill(canvas)

	for row := 0; row < 5; row++ {
		for col := 0; col < 7; col++ {
			g, a, ok := canvas.Cell(row, col)
			if !ok {
				t.Fatalf("cell (%d,%d) not drawn", row, col)
			}
			if g != '0' && g != '1' {
				t.Fatalf("cell (%d,%d): got %q", row, col, g)
			}
			if a != accent {
				t.Fatalf("cell (%d,%d): attr %+v", row, col, a)
			}
		}
	}
}

func TestRun_TimesOutWithoutKey(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.Fake(start)
	canvas := screen.NewCanvas(3, 3, true)

	res := Run(context.Background(), canvas, New(newRand(), accent, start), clk)

	if res.Reason != ReasonTimeout {
		t.Fatalf("reason: got %v, want timeout", res.Reason)
	}
	if res.Elapsed <= Timeout || res.Elapsed > Timeout+FrameDelay {
		t.Fatalf("elapsed: got %v, want just over %v", res.Elapsed, Timeout)
	}
	if canvas.Flushes() != res.Frames {
		t.Fatalf("flushes %d != frames %d", canvas.Flushes(), res.Frames)
	}
	if got := canvas.String(); got != "   \n   \n   \n" {
		t.Fatalf("expected a cleared screen, got %q", got)
	}
}

func TestRun_EndsOnKey(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.Fake(start)
	pressAt := 1200 * time.Millisecond
	term := &keyAfter{Canvas: screen.NewCanvas(3, 3, true), clk: clk, at: start.Add(pressAt)}

	res := Run(context.Background(), term, New(newRand(), accent, start), clk)

	if res.Reason != ReasonKey {
		t.Fatalf("reason: got %v, want key", res.Reason)
	}
	if res.Elapsed < pressAt || res.Elapsed >= pressAt+FrameDelay {
		t.Fatalf("elapsed: got %v, want about %v", res.Elapsed, pressAt)
	}
	if res.Frames != 30 {
		t.Fatalf("frames: got %d, want 30", res.Frames)
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	canvas := screen.NewCanvas(2, 2, true)
	res := Run(ctx, canvas, New(newRand(), accent, time.Time{}), clock.Fake(time.Time{}))
	if res.Reason != ReasonCanceled || res.Frames != 0 {
		t.Fatalf("got %+v, want canceled with no frames", res)
	}
}

func TestReason_String(t *testing.T) {
	t.Parallel()

	for r, want := range map[Reason]string{ReasonTimeout: "timeout", ReasonKey: "key", ReasonCanceled: "canceled", ReasonInterrupt: "interrupt", Reason(7): "unknown"} {
		if got := r.String(); got != want {
			t.Fatalf("Reason(%d).String() = %q, want %q", r, got, want)
		}
	}
}

func TestRun_InterruptKey(t *testing.T) {
	t.Parallel()

	canvas := screen.NewCanvas(3, 3, true)
	canvas.PushKey(screen.KeyInterrupt)

	res := Run(context.Background(), canvas, New(newRand(), accent, time.Time{}), clock.Fake(time.Time{}))
	if res.Reason != ReasonInterrupt {
		t.Fatalf("reason: got %v, want interrupt", res.Reason)
	}
	if res.Frames != 1 {
		t.Fatalf("frames: got %d, want 1", res.Frames)
	}
}
