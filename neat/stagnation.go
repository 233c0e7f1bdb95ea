package neat

// Stagnation tracks per-species progress and culls species that stopped improving.
type Stagnation struct {
	Config *StagnationConfig
}

// NewStagnation creates a new stagnation manager.
func NewStagnation(config *StagnationConfig) *Stagnation {
	return &Stagnation{Config: config}
}

// Update records the best fitness among each species' current members.
// The running best starts at 0, so a species whose members never score
// above 0 stagnates from its first evaluation.
func (s *Stagnation) Update(species []*Species, fitness []float64) {
	for _, sp := range species {
		best := 0.0
		for _, idx := range sp.Members {
			best = max(best, fitness[idx])
		}
		if best > sp.BestFitness {
			sp.BestFitness = best
			sp.Stagnation = 0
		} else {
			sp.Stagnation++
		}
	}
}

// IsStagnant reports whether a species has gone MaxStagnation or more
// generations without improvement.
func (s *Stagnation) IsStagnant(sp *Species) bool {
	return sp.Stagnation >= s.Config.MaxStagnation
}

// RemoveStagnant splits species into survivors and stagnant ones. A lone
// species is never removed. The survivors may come back empty when every
// species stagnated; the caller decides how to recover.
func (s *Stagnation) RemoveStagnant(species []*Species) (kept, removed []*Species) {
	if len(species) <= 1 {
		return species, nil
	}

	kept = make([]*Species, 0, len(species))
	for _, sp := range species {
		if s.IsStagnant(sp) {
			removed = append(removed, sp)
		} else {
			kept = append(kept, sp)
		}
	}
	return kept, removed
}
