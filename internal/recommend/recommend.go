// Package recommend produces mock recommendations for a list of songs.
//
// The similarity score is a random placeholder with no relation to song content. The random source is
// injected so tests can supply a deterministic sequence.
package recommend

import (
	"math/rand/v2"
	"time"

	"github.com/desertthunder/songbubbles/internal/models"
)

// Source draws random integers in [0, n).
//
// [*rand.Rand] satisfies Source.
type Source interface {
	IntN(n int) int
}

// Generator maps songs to [models.Recommendation] records.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator drawing from src. A nil src uses [NewSource] with seed 0.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource(0)
	}
	return &Generator{src: src}
}

// NewSource returns a PCG-backed source. Seed 0 seeds from the clock so every run differs.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns one recommendation per song, in order, with a freshly drawn similarity.
func (g *Generator) Generate(songs []string) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(songs))
	for _, song := range songs {
		recs = append(recs, models.Recommendation{
			Name:       song,
			Album:      models.AlbumFor(song),
			Similarity: clamp(g.src.IntN(models.MaxSimilarity)),
		})
	}
	return recs
}

// clamp keeps a misbehaving [Source] from producing scores outside [0, 99].
func clamp(n int) int {
	return max(0, min(n, models.MaxSimilarity-1))
}
