package screen

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fchimpan/gh-matrix-rain/internal/palette"
)

// TCell is a Terminal on top of a tcell screen.
type TCell struct {
	screen tcell.Screen
	colors map[int]tcell.Color
	bg     tcell.Color

	events   chan tcell.Event
	pollDone chan struct{}
	// resized is set by the event pump and cleared by PollKey. Resizes are
	// coalesced here so a full events channel never loses one.
	resized atomic.Bool
}

// NewTCell opens the controlling terminal.
func NewTCell() (*TCell, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &InitError{cause: fmt.Errorf("creating screen: %w", err)}
	}
	return NewTCellFrom(s)
}

// NewTCellFrom initializes s and wraps it.
func NewTCellFrom(s tcell.Screen) (*TCell, error) {
	if err := s.Init(); err != nil {
		return nil, &InitError{cause: fmt.Errorf("initializing screen: %w", err)}
	}
	t := &TCell{
		screen:   s,
		colors:   map[int]tcell.Color{},
		bg:       tcellColor(palette.Basic(palette.BasicBlack)),
		events:   make(chan tcell.Event, 16),
		pollDone: make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents forwards events until the screen is finalized, at which point
// PollEvent returns nil.
func (t *TCell) pollEvents() {
	defer close(t.pollDone)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			t.resized.Store(true)
			continue
		}
		select {
		case t.events <- ev:
		default:
			// Input arriving faster than the frame rate; drop it.
		}
	}
}

func (t *TCell) Size() (int, int) {
	w, h := t.screen.Size()
	return h, w
}

func (t *TCell) DrawCell(row, col int, g rune, a palette.Attr) error {
	rows, cols := t.Size()
	if err := checkBounds(row, col, rows, cols); err != nil {
		return err
	}
	fg, ok := t.colors[a.Slot]
	if !ok {
		fg = tcell.ColorGreen
	}
	style := tcell.StyleDefault.Foreground(fg).Background(t.bg).Bold(a.Bold)
	t.screen.SetContent(col, row, g, nil, style)
	return nil
}

func (t *TCell) EraseCell(row, col int) error {
	rows, cols := t.Size()
	if err := checkBounds(row, col, rows, cols); err != nil {
		return err
	}
	t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(t.bg))
	return nil
}

// CustomColors reports whether the terminal can show the RGB ramp; tcell maps
// RGB to the nearest palette entry on 256-color terminals.
func (t *TCell) CustomColors() bool { return t.screen.Colors() >= 256 }

func (t *TCell) RegisterColor(slot int, c palette.Color) { t.colors[slot] = tcellColor(c) }

func (t *TCell) HideCursor() { t.screen.HideCursor() }

func (t *TCell) PollKey() (Key, bool) {
	if t.resized.Swap(false) {
		t.screen.Sync()
	}
	for {
		select {
		case ev := <-t.events:
			if ev, ok := ev.(*tcell.EventKey); ok {
				return keyOf(ev), true
			}
		default:
			return "", false
		}
	}
}

func (t *TCell) Flush() { t.screen.Show() }

func (t *TCell) Clear() {
	t.screen.SetStyle(tcell.StyleDefault.Background(t.bg))
	t.screen.Clear()
}

// Close restores the terminal and waits briefly for the event pump to stop.
func (t *TCell) Close() {
	t.screen.Fini()
	select {
	case <-t.pollDone:
	case <-time.After(100 * time.Millisecond):
	}
}

func keyOf(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(string(ev.Rune()))
	case tcell.KeyCtrlC:
		return KeyInterrupt
	case tcell.KeyEscape:
		return KeyEscape
	}
	return Key(strings.ToLower(ev.Name()))
}

func tcellColor(c palette.Color) tcell.Color {
	if c.IsBasic() {
		return tcell.PaletteColor(int(c.Basic))
	}
	r, g, b := c.RGB.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
