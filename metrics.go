package genetic_queens

// PopulationMetrics holds aggregate fitness metrics for a population.
type PopulationMetrics struct {
	BoardCount   int
	BestFitness  int
	WorstFitness int
	MeanFitness  float64
	Solved       bool
}

// Metrics aggregates fitness across the current boards. Cheap enough to
// call every iteration for progress reporting.
func (p *Population) Metrics() *PopulationMetrics {
	m := &PopulationMetrics{BoardCount: len(p.Boards)}
	if m.BoardCount == 0 {
		return m
	}

	m.BestFitness = p.Boards[0].ValidQueens
	m.WorstFitness = p.Boards[0].ValidQueens

	total := 0
	for _, b := range p.Boards {
		total += b.ValidQueens
		if b.ValidQueens > m.BestFitness {
			m.BestFitness = b.ValidQueens
		}
		if b.ValidQueens < m.WorstFitness {
			m.WorstFitness = b.ValidQueens
		}
	}

	m.MeanFitness = float64(total) / float64(m.BoardCount)
	m.Solved = m.BestFitness == p.Config.BoardSize
	return m
}
