package rain

import (
	"github.com/fchimpan/gh-matrix-rain/internal/glyph"
	"github.com/fchimpan/gh-matrix-rain/internal/mapping"
	"github.com/fchimpan/gh-matrix-rain/internal/palette"
	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

// Stream shape and timing limits. Length and speed ranges are inclusive;
// dead timers are counted in frames.
const (
	MinLength = 6
	MaxLength = 16
	MinSpeed  = 1
	MaxSpeed  = 3

	MinDeadTimer        = 10
	MaxDeadTimer        = 40
	MaxInitialDeadTimer = 100

	// Per eligible tick.
	FadeChance = 0.001
	// Per trail cell, per eligible tick.
	GlitchChance = 0.005
)

type State uint8

const (
	Dead State = iota
	Active
	Fading
)

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Active:
		return "active"
	case Fading:
		return "fading"
	default:
		return "unknown"
	}
}

// Column is one falling stream. Speed divides the frame rate: a column only
// updates on frames where frame%Speed == 0.
type Column struct {
	Height int

	HeadRow int
	Length  int
	Speed   int
	State   State

	// DeadTimer counts down while Dead; the column restarts after it hits 0.
	DeadTimer int

	Trail Trail
}

func NewColumn(height, deadTimer int) Column {
	return Column{Height: height, State: Dead, DeadTimer: deadTimer}
}

// Reset starts a new stream at the top with a fresh length and speed.
func (c *Column) Reset(rng Rand) {
	c.HeadRow = 0
	c.Trail.Reset()
	c.Length = MinLength + rng.IntN(MaxLength-MinLength+1)
	c.Speed = MinSpeed + rng.IntN(MaxSpeed-MinSpeed+1)
	c.State = Active
}

// Step advances the column by one frame, erasing cells that leave the trail
// from column x of s. It reports whether the trail should be drawn this frame.
func (c *Column) Step(frame uint64, x int, rng Rand, glyphs *glyph.Source, s screen.Surface) bool {
	if c.State == Dead {
		if c.DeadTimer > 0 {
			c.DeadTimer--
			return false
		}
		c.Reset(rng)
		return false
	}

	speed := max(c.Speed, 1)
	if frame%uint64(speed) != 0 {
		return false
	}

	switch c.State {
	case Active:
		if rng.Float64() < FadeChance {
			c.State = Fading
			return false
		}

		c.Trail.Push(Cell{Row: c.HeadRow, Glyph: glyphs.Next()})
		if c.Trail.Len() > c.Length {
			old, _ := c.Trail.PopOldest()
			_ = s.EraseCell(old.Row, x)
		}

		for i := 0; i < c.Trail.Len(); i++ {
			if rng.Float64() < GlitchChance {
				cell := c.Trail.At(i)
				cell.Glyph = glyphs.Next()
				c.Trail.Set(i, cell)
			}
		}

		c.HeadRow++
		if c.HeadRow >= c.Height {
			c.State = Fading
		}

	case Fading:
		if old, ok := c.Trail.PopOldest(); ok {
			_ = s.EraseCell(old.Row, x)
		}
		if c.Trail.Len() == 0 {
			c.State = Dead
			c.DeadTimer = MinDeadTimer + rng.IntN(MaxDeadTimer-MinDeadTimer+1)
		}
	}

	return c.Trail.Len() > 0
}

// Draw paints the trail into column x. The body fades from the darkest shade
// at the oldest cell; an active column draws its newest cell as the head.
func (c *Column) Draw(x int, ramp palette.Ramp, s screen.Surface) {
	n := c.Trail.Len()
	if n == 0 {
		return
	}

	active := c.State == Active
	body := n
	if active {
		body = n - 1
	}
	if len(ramp.Trail) > 0 {
		denom := mapping.Denominator(n, active)
		for i := 0; i < body; i++ {
			cell := c.Trail.At(i)
			a := ramp.Trail[mapping.ShadeIndex(i, denom, len(ramp.Trail))]
			_ = s.DrawCell(cell.Row, x, cell.Glyph, a)
		}
	}

	if active {
		head, _ := c.Trail.Newest()
		_ = s.DrawCell(head.Row, x, head.Glyph, ramp.Head)
	}
}
