package genetic_queens

import (
	"time"
)

// Run is the archived record of one solver run: enough to replay it (board
// size plus seed) and enough to inspect it without replaying (outcome,
// iteration count, the best board's layout and fitness).
type Run struct {
	ID          uint
	BoardSize   int
	Seed        int64
	Outcome     string
	Iterations  int
	ValidQueens int
	Layout      string
	CreatedAt   time.Time
}

// NewRun snapshots a terminated population.
func NewRun(p *Population, outcome Outcome) *Run {
	best := p.Best()
	return &Run{
		BoardSize:   p.Config.BoardSize,
		Seed:        p.Seed,
		Outcome:     outcome.String(),
		Iterations:  p.Iteration,
		ValidQueens: best.ValidQueens,
		Layout:      best.Layout(),
	}
}
