package genetic_queens

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
)

type PopulationConfig struct {
	BoardSize      int `toml:"board_size"`
	PopulationSize int `toml:"population_size"`
	MutationChance int `toml:"mutation_chance"`
	MaxIterations  int `toml:"max_iterations"`
}

// ApplyDefaults fills any unset tuning knob. BoardSize has no default; it
// always comes from the caller.
func (c *PopulationConfig) ApplyDefaults() {
	if c.PopulationSize == 0 {
		c.PopulationSize = DefaultPopulationSize
	}
	if c.MutationChance == 0 {
		c.MutationChance = DefaultMutationChance
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeSolved Outcome = iota + 1
	OutcomeExhausted
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// Population owns the working set of boards and drives the evolutionary
// loop. All randomness flows through the single rng in a fixed order —
// synthesis first, then per iteration the crossover pivot followed by one
// mutation roll per board — so a (board size, seed) pair replays exactly.
type Population struct {
	Config    *PopulationConfig
	Boards    []*Board
	Iteration int
	Seed      int64

	rng        *rand.Rand
	reproducer *Reproducer
	mutator    *Mutator
}

// NewPopulationFromConfig validates the config, resolves the seed, and
// synthesizes the initial random boards sorted best-first.
func NewPopulationFromConfig(config *PopulationConfig, seed int64) (*Population, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	config.ApplyDefaults()

	if config.BoardSize < MinBoardSize {
		return nil, fmt.Errorf("board size must be %d or greater", MinBoardSize)
	}
	if config.PopulationSize < 2 {
		return nil, fmt.Errorf("population size must be at least 2, got %d", config.PopulationSize)
	}
	if config.MutationChance < 0 || config.MutationChance > 100 {
		return nil, fmt.Errorf("mutation chance must be a percentage in [0,100], got %d", config.MutationChance)
	}

	seed = SeedOrNow(seed)
	rng := rand.New(rand.NewSource(seed))

	p := &Population{
		Config:     config,
		Seed:       seed,
		rng:        rng,
		reproducer: NewReproducer(rng),
		mutator:    NewMutator(config.MutationChance, rng),
	}
	p.synthesizeBoards()

	return p, nil
}

func (p *Population) synthesizeBoards() {
	p.Boards = make([]*Board, p.Config.PopulationSize)
	for i := range p.Boards {
		p.Boards[i] = NewBoardFromRandom(p.Config.BoardSize, p.rng)
	}
	p.sortBoards()
}

// sortBoards orders best-first. The sort is stable, so equal-fitness
// boards keep their relative order; that is the tie rule seeded runs
// reproduce.
func (p *Population) sortBoards() {
	sort.SliceStable(p.Boards, func(i, j int) bool {
		return p.Boards[i].ValidQueens > p.Boards[j].ValidQueens
	})
}

// Best returns the current fittest board. Valid at every observation
// point: the population is re-sorted before Step returns.
func (p *Population) Best() *Board {
	return p.Boards[0]
}

// Solved reports whether the best board is a full non-attacking placement.
func (p *Population) Solved() bool {
	return p.Best().ValidQueens == p.Config.BoardSize
}

// Step runs one iteration: breed the two fittest boards, append both
// children, sweep mutation over everything including the children, then
// re-sort and truncate back to the configured size.
func (p *Population) Step() {
	p.Iteration++

	child1, child2 := p.reproducer.Recombine(p.Boards[0], p.Boards[1])
	p.Boards = append(p.Boards, child1, child2)

	p.mutator.Sweep(p.Boards)

	p.sortBoards()
	p.Boards = p.Boards[:p.Config.PopulationSize]
}

// Run iterates until a solution appears, MaxIterations is spent, or ctx is
// cancelled. Cancellation is only observed at iteration boundaries, so the
// population is always sorted and truncated when Run returns.
func (p *Population) Run(ctx context.Context) Outcome {
	for !p.Solved() && p.Iteration < p.Config.MaxIterations {
		select {
		case <-ctx.Done():
			return OutcomeInterrupted
		default:
		}
		p.Step()
		if DEBUG && p.Iteration%1000 == 0 {
			m := p.Metrics()
			log.Printf("iteration %d: best=%d mean=%.2f", p.Iteration, m.BestFitness, m.MeanFitness)
		}
	}
	if p.Solved() {
		return OutcomeSolved
	}
	return OutcomeExhausted
}
