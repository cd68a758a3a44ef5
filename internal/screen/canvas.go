package screen

import (
	"strings"

	"github.com/fchimpan/gh-matrix-rain/internal/palette"
)

type cell struct {
	g    rune
	attr palette.Attr
	set  bool
}

// Canvas is an in-memory Terminal. The bubbletea backend renders it from
// View, and tests use it to observe what the simulation drew.
type Canvas struct {
	rows  int
	cols  int
	cells []cell // flat: row*cols + col

	custom bool
	colors map[int]palette.Color

	keys         []Key
	flushes      int
	cursorHidden bool
}

func NewCanvas(rows, cols int, customColors bool) *Canvas {
	c := &Canvas{custom: customColors, colors: map[int]palette.Color{}}
	c.Resize(rows, cols)
	return c
}

func (c *Canvas) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		c.rows, c.cols, c.cells = 0, 0, nil
		return
	}
	n := rows * cols
	if c.rows == rows && c.cols == cols && cap(c.cells) >= n {
		c.cells = c.cells[:n]
		return
	}
	c.rows = rows
	c.cols = cols
	c.cells = make([]cell, n)
}

func (c *Canvas) Size() (int, int) { return c.rows, c.cols }

func (c *Canvas) DrawCell(row, col int, g rune, a palette.Attr) error {
	if err := checkBounds(row, col, c.rows, c.cols); err != nil {
		return err
	}
	c.cells[row*c.cols+col] = cell{g: g, attr: a, set: true}
	return nil
}

func (c *Canvas) EraseCell(row, col int) error {
	if err := checkBounds(row, col, c.rows, c.cols); err != nil {
		return err
	}
	c.cells[row*c.cols+col] = cell{}
	return nil
}

// Cell returns the glyph and attribute at (row, col); ok is false for blank
// or out-of-range cells.
func (c *Canvas) Cell(row, col int) (g rune, a palette.Attr, ok bool) {
	if checkBounds(row, col, c.rows, c.cols) != nil {
		return ' ', palette.Attr{}, false
	}
	cl := c.cells[row*c.cols+col]
	if !cl.set {
		return ' ', palette.Attr{}, false
	}
	return cl.g, cl.attr, true
}

func (c *Canvas) CustomColors() bool { return c.custom }

func (c *Canvas) RegisterColor(slot int, col palette.Color) { c.colors[slot] = col }

func (c *Canvas) Color(slot int) (palette.Color, bool) {
	col, ok := c.colors[slot]
	return col, ok
}

func (c *Canvas) HideCursor() { c.cursorHidden = true }

func (c *Canvas) CursorHidden() bool { return c.cursorHidden }

// PushKey queues a key for PollKey.
func (c *Canvas) PushKey(k Key) { c.keys = append(c.keys, k) }

func (c *Canvas) PollKey() (Key, bool) {
	if len(c.keys) == 0 {
		return "", false
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	return k, true
}

func (c *Canvas) Flush() { c.flushes++ }

// Flushes counts Flush calls.
func (c *Canvas) Flushes() int { return c.flushes }

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

func (c *Canvas) Close() {}

// String renders the glyphs only, one line per row, blanks as spaces.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			g, _, _ := c.Cell(row, col)
			b.WriteRune(g)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
