package glyph

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestAlphabet_SingleCell(t *testing.T) {
	t.Parallel()

	if len(Alphabet) != 125 {
		t.Fatalf("alphabet size: got %d, want 125", len(Alphabet))
	}
	for _, r := range Alphabet {
		if w := runewidth.RuneWidth(r); w != 1 {
			t.Fatalf("rune %q has width %d", r, w)
		}
	}
}

func TestSource_NextStaysInAlphabet(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	src := NewSource(rng, Alphabet)
	for i := 0; i < 2000; i++ {
		g := src.Next()
		if !slices.Contains(Alphabet, g) {
			t.Fatalf("glyph %q not in alphabet", g)
		}
	}
}

func TestSource_BinaryCoversBoth(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7))
	src := NewSource(rng, Binary)
	seen := map[rune]int{}
	for i := 0; i < 200; i++ {
		seen[src.Next()]++
	}
	if len(seen) != 2 || seen['0'] == 0 || seen['1'] == 0 {
		t.Fatalf("expected both 0 and 1, got %v", seen)
	}
}

func TestNewSource_DropsWideRunes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	src := NewSource(rng, []rune("漢a字"))
	if src.Len() != 1 {
		t.Fatalf("expected only the narrow rune to survive, got %d", src.Len())
	}
	if g := src.Next(); g != 'a' {
		t.Fatalf("got %q, want 'a'", g)
	}

	src = NewSource(rng, []rune("漢字"))
	if src.Len() != len(Alphabet) {
		t.Fatalf("expected fallback to Alphabet, got %d runes", src.Len())
	}
}
