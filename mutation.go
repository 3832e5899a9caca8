package genetic_queens

import (
	"math/rand"
)

// A Mutation moves one row's queen to a new column. Drawing the column the
// queen already occupies is legal; the mutation is then a no-op.
type Mutation struct {
	Row    int
	Column int
}

// NewMutation draws a row and a column from the shared stream, in that
// order.
func NewMutation(rng *rand.Rand, size int) *Mutation {
	return &Mutation{
		Row:    rng.Intn(size),
		Column: rng.Intn(size),
	}
}

func (m *Mutation) Apply(b *Board) {
	b.Positions[m.Row] = m.Column
	b.UpdateValidQueens()
}

// Mutator sweeps a population, mutating each board independently with
// Chance percent probability. One roll is consumed per board regardless of
// outcome; the row and column draws only happen on a hit, matching the
// stream ordering a seeded run depends on.
type Mutator struct {
	Chance int
	rng    *rand.Rand
}

func NewMutator(chance int, rng *rand.Rand) *Mutator {
	return &Mutator{Chance: chance, rng: rng}
}

func (mu *Mutator) Sweep(boards []*Board) {
	for _, b := range boards {
		if mu.rng.Intn(100) < mu.Chance {
			NewMutation(mu.rng, b.Size).Apply(b)
		}
	}
}
