package genetic_queens

import (
	"math/rand"
)

// Reproducer implements single-point crossover. A pivot is drawn uniformly
// from [0, size); child one keeps parent A's columns below the pivot and
// takes parent B's from the pivot on, child two is the exact complement.
type Reproducer struct {
	rng *rand.Rand
}

func NewReproducer(rng *rand.Rand) *Reproducer {
	return &Reproducer{rng: rng}
}

// Recombine draws one pivot from the shared stream and returns both
// children. Parents must be the same size.
func (r *Reproducer) Recombine(a, b *Board) (*Board, *Board) {
	pivot := r.rng.Intn(a.Size)
	return recombineAt(a, b, pivot)
}

// recombineAt is the deterministic half of Recombine. Children are deep
// copies; the parents are never touched.
func recombineAt(a, b *Board, pivot int) (*Board, *Board) {
	child1 := a.Clone()
	child2 := b.Clone()

	for i := pivot; i < a.Size; i++ {
		child1.Positions[i] = b.Positions[i]
		child2.Positions[i] = a.Positions[i]
	}

	child1.UpdateValidQueens()
	child2.UpdateValidQueens()

	return child1, child2
}
