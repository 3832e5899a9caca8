package genetic_queens

import (
	"math/rand"
	"strconv"
	"strings"

	cp "github.com/jinzhu/copier"
)

// A Board is one candidate solution: Positions maps row index to the
// column of that row's queen, so two queens can never share a row.
// ValidQueens is the cached fitness and must be refreshed whenever
// Positions changes.
type Board struct {
	Size        int
	Positions   []int
	ValidQueens int
}

// NewBoardFromRandom builds a board of the given size with every queen
// placed in a uniformly drawn column. Draws size values from rng.
func NewBoardFromRandom(size int, rng *rand.Rand) *Board {
	positions := make([]int, size)
	for i := range positions {
		positions[i] = rng.Intn(size)
	}
	b := &Board{Size: size, Positions: positions}
	b.UpdateValidQueens()
	return b
}

// UpdateValidQueens recomputes the cached fitness from Positions.
func (b *Board) UpdateValidQueens() {
	b.ValidQueens = CountValidQueens(b.Positions)
}

// Clone returns a fully independent copy. Children must never alias a
// parent's Positions slice.
func (b *Board) Clone() *Board {
	clone := &Board{}
	cp.CopyWithOption(clone, b, cp.Option{DeepCopy: true})
	return clone
}

// Render draws the board the way the CLI prints it: one line per row
// with the queen's cell marked Q, each followed by a dash divider.
func (b *Board) Render() string {
	var sb strings.Builder
	divider := strings.Repeat("-", b.Size*4+1)
	for _, col := range b.Positions {
		for c := 0; c < b.Size; c++ {
			if c == col {
				sb.WriteString("| Q ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n")
		sb.WriteString(divider)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Layout flattens Positions to a comma-separated string for persistence.
func (b *Board) Layout() string {
	var sb strings.Builder
	for i, col := range b.Positions {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(col))
	}
	return sb.String()
}
