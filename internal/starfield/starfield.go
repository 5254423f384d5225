// Package starfield generates the decorative star background shown behind the globe.
package starfield

import (
	"math/rand/v2"
	"time"

	"github.com/UnknownOlympus/globe/internal/models"
	"github.com/google/uuid"
)

// DefaultCount is the number of stars in a generated field.
const DefaultCount = 100

// TwinkleOpacity is the opacity twinkling stars fade to.
const TwinkleOpacity = 0.1

var colors = []models.StarColor{models.StarWhite, models.StarYellow, models.StarBlue}

// Config controls star generation.
type Config struct {
	Count int    // Number of stars, DefaultCount when non-positive
	Seed  uint64 // Seed for reproducible fields, random when zero
}

// Generate returns a field of randomly placed stars.
//
// Positions are fractions of the viewport in [0, 1], sizes in [1, 3] points, opacities in [0.3, 1],
// twinkle durations in [1s, 3s] and delays in [0s, 2s]. About half of the stars twinkle.
func Generate(cfg Config) []models.Star {
	count := cfg.Count
	if count <= 0 {
		count = DefaultCount
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ids := rngReader{rng: rng}

	stars := make([]models.Star, 0, count)
	for range count {
		// Reading from the generator never fails.
		id, _ := uuid.NewRandomFromReader(ids)
		stars = append(stars, models.Star{
			ID:              id,
			X:               rng.Float64(),
			Y:               rng.Float64(),
			Size:            between(rng, 1, 3),
			Color:           colors[rng.IntN(len(colors))],
			Opacity:         between(rng, 0.3, 1),
			ShouldTwinkle:   rng.IntN(2) == 1,
			TwinkleDuration: time.Duration(between(rng, 1, 3) * float64(time.Second)),
			Delay:           time.Duration(between(rng, 0, 2) * float64(time.Second)),
		})
	}

	return stars
}

// Twinkle returns a copy of stars in which every twinkling star has faded to TwinkleOpacity.
func Twinkle(stars []models.Star) []models.Star {
	out := make([]models.Star, len(stars))
	copy(out, stars)
	for idx := range out {
		if out[idx].ShouldTwinkle {
			out[idx].Opacity = TwinkleOpacity
		}
	}
	return out
}

// rngReader feeds a seeded generator into uuid so IDs are reproducible too.
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for idx := range p {
		p[idx] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
