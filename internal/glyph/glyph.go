package glyph

import (
	"github.com/mattn/go-runewidth"
)

// Alphabet is the rain character set: digits, Latin letters and the
// half-width katakana block (U+FF61..U+FF9F). Every rune is one cell wide.
var Alphabet = []rune("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"｡｢｣､･ｦｧｨｩｪｫｬｭｮｯｰｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝﾞﾟ")

// Binary is used by the intro flourish.
var Binary = []rune{'0', '1'}

type Rand interface {
	IntN(n int) int
}

// Source samples glyphs uniformly, with replacement.
type Source struct {
	rng      Rand
	alphabet []rune
}

// NewSource returns a Source over alphabet. Runes that do not occupy exactly
// one terminal cell are dropped; if nothing is left, Alphabet is used.
func NewSource(rng Rand, alphabet []rune) *Source {
	return &Source{rng: rng, alphabet: singleCell(alphabet)}
}

func (s *Source) Next() rune {
	return s.alphabet[s.rng.IntN(len(s.alphabet))]
}

func (s *Source) Len() int { return len(s.alphabet) }

func singleCell(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if runewidth.RuneWidth(r) == 1 {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return Alphabet
	}
	return out
}
