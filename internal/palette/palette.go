// Package palette builds the shade ramp used to draw rain trails.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// BasicColor is one of the terminal's own palette entries. BasicNone means the
// Color carries an RGB value instead.
type BasicColor int

const (
	BasicNone  BasicColor = -1
	BasicBlack BasicColor = 0
	BasicGreen BasicColor = 2
	BasicWhite BasicColor = 7
)

// Representative RGB for the basic entries (xterm defaults).
var basicRGB = map[BasicColor]colorful.Color{
	BasicBlack: {R: 0, G: 0, B: 0},
	BasicGreen: {R: 0, G: 205.0 / 255, B: 0},
	BasicWhite: {R: 229.0 / 255, G: 229.0 / 255, B: 229.0 / 255},
}

type Color struct {
	RGB   colorful.Color
	Basic BasicColor
}

func RGB(c colorful.Color) Color { return Color{RGB: c, Basic: BasicNone} }

func Basic(b BasicColor) Color { return Color{RGB: basicRGB[b], Basic: b} }

// IsBasic reports whether the color refers to a terminal palette entry.
func (c Color) IsBasic() bool { return c.Basic != BasicNone }

// Lightness is the CIE L* of the color, 0 (black) to 100 (white).
func Lightness(c Color) float64 {
	l, _, _ := c.RGB.Lab()
	return l
}

// Attr is a drawing attribute: a registered color slot plus boldness.
type Attr struct {
	Slot int
	Bold bool
}

// Registrar is the part of a terminal that owns color slots.
type Registrar interface {
	CustomColors() bool
	RegisterColor(slot int, c Color)
}

const (
	SlotHead   = 1
	SlotTrail  = 2
	SlotAccent = 5
	slotShade0 = 11
	slotCustom = 20
)

// Shades is the number of trail attributes in every ramp.
const Shades = 6

var (
	shadeDark  = colorful.Color{R: 0, G: 0.4, B: 0}
	shadeLight = colorful.Color{R: 0, G: 1, B: 0}
	headBlend  = colorful.Color{R: 0.6, G: 1, B: 0.9}
)

type Ramp struct {
	Trail  []Attr
	Head   Attr
	Accent Attr
	Colors map[int]Color
}

// Color returns the color registered for attr's slot.
func (r Ramp) Color(a Attr) Color { return r.Colors[a.Slot] }

type Options struct {
	// Flat forces the two-color fallback.
	Flat bool
}

// Build registers the ramp's colors with r and returns the attributes.
// With custom colors the trail is a dark-to-bright green gradient and the head
// a bold teal-white; otherwise six copies of basic green and a bold white head.
func Build(r Registrar, opts Options) Ramp {
	ramp := Ramp{Colors: map[int]Color{}}
	register := func(slot int, c Color) {
		ramp.Colors[slot] = c
		r.RegisterColor(slot, c)
	}

	register(SlotHead, Basic(BasicWhite))
	register(SlotTrail, Basic(BasicGreen))
	register(SlotAccent, Basic(BasicGreen))
	ramp.Accent = Attr{Slot: SlotAccent, Bold: true}

	if opts.Flat || !r.CustomColors() {
		ramp.Head = Attr{Slot: SlotHead, Bold: true}
		ramp.Trail = make([]Attr, Shades)
		for i := range ramp.Trail {
			ramp.Trail[i] = Attr{Slot: SlotTrail}
		}
		return ramp
	}

	register(slotCustom, RGB(headBlend))
	ramp.Head = Attr{Slot: slotCustom, Bold: true}

	ramp.Trail = make([]Attr, Shades)
	for i := range Shades {
		t := float64(i) / float64(Shades-1)
		slot := slotShade0 + i
		// Only the green channel grows, so L* increases strictly.
		register(slot, RGB(shadeDark.BlendRgb(shadeLight, t)))
		ramp.Trail[i] = Attr{Slot: slot}
	}
	return ramp
}
