package game

import "math/rand"

// Dice yields two die faces in [1,6]. Transitions take all their
// randomness from here, so a scripted implementation makes whole games
// deterministic in tests.
type Dice interface {
	Roll() (int, int)
}

type randDice struct {
	rng *rand.Rand
}

// NewDice returns a seeded dice source.
func NewDice(seed int64) Dice {
	return &randDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *randDice) Roll() (int, int) {
	return d.rng.Intn(6) + 1, d.rng.Intn(6) + 1
}
