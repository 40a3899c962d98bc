package game

import (
	"math/rand"
	"time"
)

// Generator draws random colors from the subset unlocked at a level. The
// random source is injected so sequences are reproducible in tests.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator backed by the given source. A nil rng
// falls back to a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NextColor returns a color drawn uniformly from AvailableColors(level).
func (g *Generator) NextColor(level int) Color {
	avail := AvailableColors(level)
	return avail[g.rng.Intn(len(avail))]
}

// SuccessPhrase returns a random phrase for the win screen.
func (g *Generator) SuccessPhrase() string {
	return successPhrases[g.rng.Intn(len(successPhrases))]
}
