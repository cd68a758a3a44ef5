package rain

import (
	"math/rand/v2"

	"github.com/fchimpan/gh-matrix-rain/internal/glyph"
	"github.com/fchimpan/gh-matrix-rain/internal/palette"
	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

// Rand is the randomness the simulation draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns the seeded generator used across the program.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Engine owns every column and the frame counter.
type Engine struct {
	Rows int
	Cols int

	columns []Column
	frame   uint64

	rng    Rand
	glyphs *glyph.Source
	ramp   palette.Ramp
}

// NewEngine creates one Dead column per terminal column, each with a random
// initial dead timer so streams appear staggered.
func NewEngine(rows, cols int, rng Rand, ramp palette.Ramp) *Engine {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	columns := make([]Column, cols)
	for x := range columns {
		columns[x] = NewColumn(rows, rng.IntN(MaxInitialDeadTimer+1))
	}

	return &Engine{
		Rows:    rows,
		Cols:    cols,
		columns: columns,
		rng:     rng,
		glyphs:  glyph.NewSource(rng, glyph.Alphabet),
		ramp:    ramp,
	}
}

// Tick updates and draws every column once, then advances the frame counter.
func (e *Engine) Tick(s screen.Surface) {
	for x := range e.columns {
		c := &e.columns[x]
		if c.Step(e.frame, x, e.rng, e.glyphs, s) {
			c.Draw(x, e.ramp, s)
		}
	}
	e.frame++
}

func (e *Engine) Frame() uint64 { return e.frame }

// Columns returns the live column slice.
func (e *Engine) Columns() []Column { return e.columns }

func (e *Engine) Column(x int) *Column { return &e.columns[x] }
