package genetic_queens

import (
	"time"
)

const (
	DEBUG = false

	// MinBoardSize is the smallest board with a non-attacking solution.
	MinBoardSize = 4

	DefaultPopulationSize = 10
	DefaultMutationChance = 50
	DefaultMaxIterations  = 10000
)

// SeedOrNow resolves the effective random seed. Zero means no seed was
// given and the current epoch second is used, as the CLI contract promises.
// The resolved value is what gets reported, so a run is always replayable.
func SeedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().Unix()
	}
	return seed
}
