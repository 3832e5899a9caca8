package genetic_queens

import (
	rnd "math/rand"
	test "testing"
)

func TestMutationLocality(t *test.T) {
	rng := rnd.New(rnd.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		board := NewBoardFromRandom(8, rng)
		before := append([]int(nil), board.Positions...)

		m := NewMutation(rng, board.Size)
		m.Apply(board)

		changed := 0
		for i := range before {
			if board.Positions[i] != before[i] {
				if i != m.Row {
					t.Fatalf("Row %d changed but mutation targeted row %d", i, m.Row)
				}
				changed++
			}
		}
		// Zero changes is legal: the draw may land on the occupied column
		if changed > 1 {
			t.Errorf("Mutation changed %d rows, expected at most 1", changed)
		}

		if board.Positions[m.Row] != m.Column {
			t.Errorf("Row %d holds %d, expected mutated column %d",
				m.Row, board.Positions[m.Row], m.Column)
		}
		if board.ValidQueens != CountValidQueens(board.Positions) {
			t.Errorf("Fitness is stale after mutation")
		}
	}
}

func TestMutationDrawsInRange(t *test.T) {
	rng := rnd.New(rnd.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		m := NewMutation(rng, 8)
		if m.Row < 0 || m.Row >= 8 || m.Column < 0 || m.Column >= 8 {
			t.Fatalf("Mutation draw out of range: %+v", m)
		}
	}
}

func TestMutatorChanceZeroAndFull(t *test.T) {
	rng := rnd.New(rnd.NewSource(42))
	boards := []*Board{
		NewBoardFromRandom(8, rng),
		NewBoardFromRandom(8, rng),
	}
	before := [][]int{
		append([]int(nil), boards[0].Positions...),
		append([]int(nil), boards[1].Positions...),
	}

	// Chance 0 never mutates but still consumes one roll per board
	never := NewMutator(0, rng)
	never.Sweep(boards)
	for i, b := range boards {
		for j := range before[i] {
			if b.Positions[j] != before[i][j] {
				t.Fatalf("Chance-0 sweep mutated board %d", i)
			}
		}
	}

	// Chance 100 mutates every board (possibly as a no-op redraw, so only
	// the fitness refresh is observable on every board)
	always := NewMutator(100, rng)
	always.Sweep(boards)
	for i, b := range boards {
		if b.ValidQueens != CountValidQueens(b.Positions) {
			t.Errorf("Board %d fitness stale after chance-100 sweep", i)
		}
	}
}

func TestMutatorDeterminism(t *test.T) {
	run := func() []*Board {
		rng := rnd.New(rnd.NewSource(42))
		boards := make([]*Board, 5)
		for i := range boards {
			boards[i] = NewBoardFromRandom(8, rng)
		}
		NewMutator(50, rng).Sweep(boards)
		return boards
	}

	boards1 := run()
	boards2 := run()

	for i := range boards1 {
		for j := range boards1[i].Positions {
			if boards1[i].Positions[j] != boards2[i].Positions[j] {
				t.Fatalf("Same seed diverged at board %d row %d", i, j)
			}
		}
	}
}
