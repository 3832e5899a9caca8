package genetic_queens

import (
	rnd "math/rand"
	mop "reflect"
	test "testing"
)

func TestNewBoardFromRandom(t *test.T) {
	rng := rnd.New(rnd.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		board := NewBoardFromRandom(8, rng)

		if len(board.Positions) != 8 {
			t.Fatalf("Expected 8 positions, got %d", len(board.Positions))
		}
		for row, col := range board.Positions {
			if col < 0 || col >= 8 {
				t.Errorf("Row %d has out of range column %d", row, col)
			}
		}
		if board.ValidQueens != CountValidQueens(board.Positions) {
			t.Errorf("Cached fitness [%d] is stale, evaluator says [%d]",
				board.ValidQueens, CountValidQueens(board.Positions))
		}
	}
}

func TestNewBoardFromRandomDeterminism(t *test.T) {
	board1 := NewBoardFromRandom(8, rnd.New(rnd.NewSource(42)))
	board2 := NewBoardFromRandom(8, rnd.New(rnd.NewSource(42)))

	if !mop.DeepEqual(board1, board2) {
		t.Errorf("Same seed produced different boards:\n%v\n%v", board1, board2)
	}
}

func TestBoardClone(t *test.T) {
	board := NewBoardFromRandom(8, rnd.New(rnd.NewSource(42)))
	clone := board.Clone()

	if !mop.DeepEqual(board, clone) {
		t.Fatalf("Clone does not match original:\nOriginal: %v\nClone: %v", board, clone)
	}

	// Mutating the clone must leave the original alone
	clone.Positions[0] = (clone.Positions[0] + 1) % clone.Size
	clone.UpdateValidQueens()

	if mop.DeepEqual(board.Positions, clone.Positions) {
		t.Errorf("Clone shares Positions with original")
	}
}

func TestBoardRender(t *test.T) {
	board := &Board{Size: 4, Positions: []int{1, 3, 0, 2}}
	board.UpdateValidQueens()

	expected := "" +
		"|   | Q |   |   |\n" +
		"-----------------\n" +
		"|   |   |   | Q |\n" +
		"-----------------\n" +
		"| Q |   |   |   |\n" +
		"-----------------\n" +
		"|   |   | Q |   |\n" +
		"-----------------\n"

	if got := board.Render(); got != expected {
		t.Errorf("Unexpected rendering:\nExpected:\n%s\nActual:\n%s", expected, got)
	}
}

func TestBoardLayout(t *test.T) {
	board := &Board{Size: 4, Positions: []int{1, 3, 0, 2}}

	if got := board.Layout(); got != "1,3,0,2" {
		t.Errorf("Expected layout '1,3,0,2', got %q", got)
	}
}
