package engine

import (
	"math/rand/v2"
	"strings"
)

// Shuffler varies mutable extents. Each '-' delimited run of a definition is
// rotated by a random number of leads, so a run keeps its leads and their
// cyclic order and only its starting lead changes.
//
// A Shuffler is not safe for concurrent use.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler draws rotations from rng.
func NewShuffler(rng *rand.Rand) *Shuffler { return &Shuffler{rng: rng} }

// NewSeededShuffler returns a Shuffler whose output depends only on seed.
func NewSeededShuffler(seed uint64) *Shuffler {
	return NewShuffler(rand.New(rand.NewPCG(seed, seed)))
}

// Shuffle strips whitespace from def, rotates every run right by a count
// drawn from [0, len(run)) and joins the runs without separators.
func (s *Shuffler) Shuffle(def string) string {
	runs := strings.Split(strings.Join(strings.Fields(def), ""), "-")
	for i, run := range runs {
		r := []rune(run)
		if len(r) < 2 {
			continue
		}
		runs[i] = rotate(r, s.rng.IntN(len(r)))
	}
	return strings.Join(runs, "")
}

// rotate moves the last k runes to the front.
func rotate(r []rune, k int) string {
	cut := len(r) - k
	return string(r[cut:]) + string(r[:cut])
}
