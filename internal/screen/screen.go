// Package screen provides the cell-addressed terminal surfaces the rain is
// drawn on.
package screen

import (
	"github.com/fchimpan/gh-matrix-rain/internal/palette"
)

// Surface is the write-only grid the simulation draws into. Draw and erase are
// best-effort: out-of-range cells return *BoundsError and change nothing.
type Surface interface {
	Size() (rows, cols int)
	DrawCell(row, col int, g rune, a palette.Attr) error
	EraseCell(row, col int) error
}

// Terminal is a Surface that also owns color slots, input and refresh.
type Terminal interface {
	Surface
	palette.Registrar

	HideCursor()
	// PollKey returns immediately; ok is false when no key is pending.
	PollKey() (k Key, ok bool)
	// Flush commits all pending draws.
	Flush()
	Clear()
	Close()
}

// Key names a key press the way bubbletea does: "q", "ctrl+c", "esc", ...
type Key string

const (
	KeyQuit      Key = "q"
	KeyInterrupt Key = "ctrl+c"
	KeyEscape    Key = "esc"
)
