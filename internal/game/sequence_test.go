package game

import (
	"math/rand"
	"testing"
)

func TestNextColorStaysWithinUnlockedSet(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))
	for level := 1; level <= 30; level++ {
		for i := 0; i < 100; i++ {
			c := g.NextColor(level)
			if !colorAvailable(c, level) {
				t.Fatalf("level %d draw %d: %s is not unlocked", level, i, c)
			}
		}
	}
}

func TestNextColorIsUniform(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))
	const draws = 8000
	counts := make(map[Color]int)
	for i := 0; i < draws; i++ {
		counts[g.NextColor(1)]++
	}
	if len(counts) != 4 {
		t.Fatalf("expected draws across all 4 base colors, got %d", len(counts))
	}
	// 2000 expected per color; ~5 sigma tolerance.
	for c, n := range counts {
		if n < 1800 || n > 2200 {
			t.Fatalf("color %s drawn %d times out of %d, outside uniform tolerance", c, n, draws)
		}
	}
}

func TestNextColorUsesFullSetAtHighLevels(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(11)))
	seen := make(map[Color]bool)
	for i := 0; i < 2000; i++ {
		seen[g.NextColor(25)] = true
	}
	if len(seen) != len(Catalog) {
		t.Fatalf("expected all %d colors at level 25, saw %d", len(Catalog), len(seen))
	}
}

func TestSuccessPhraseComesFromList(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		p := g.SuccessPhrase()
		found := false
		for _, known := range successPhrases {
			if p == known {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("phrase %q is not in the phrase list", p)
		}
	}
}

func TestNilSourceFallsBack(t *testing.T) {
	g := NewGenerator(nil)
	if c := g.NextColor(1); !colorAvailable(c, 1) {
		t.Fatalf("fallback source drew locked color %s", c)
	}
}
