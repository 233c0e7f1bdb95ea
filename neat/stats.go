package neat

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises the fitness of one evaluated generation.
type GenerationStats struct {
	Generation     int     `csv:"generation"`
	BestFitness    float64 `csv:"best_fitness"`
	MeanFitness    float64 `csv:"mean_fitness"`
	StdevFitness   float64 `csv:"stdev_fitness"`
	SpeciesCount   int     `csv:"species_count"`
	PopulationSize int     `csv:"population_size"`
}

// ComputeGenerationStats derives best, mean and sample standard deviation
// from a fitness array. Stdev is 0 for fewer than two values.
func ComputeGenerationStats(generation int, fitness []float64, speciesCount int) GenerationStats {
	s := GenerationStats{
		Generation:     generation,
		SpeciesCount:   speciesCount,
		PopulationSize: len(fitness),
	}
	if len(fitness) == 0 {
		return s
	}

	s.BestFitness = floats.Max(fitness)
	if len(fitness) < 2 {
		s.MeanFitness = fitness[0]
		return s
	}
	s.MeanFitness, s.StdevFitness = stat.MeanStdDev(fitness, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Float64("best_fitness", s.BestFitness),
		slog.Float64("mean_fitness", s.MeanFitness),
		slog.Float64("stdev_fitness", s.StdevFitness),
		slog.Int("species", s.SpeciesCount),
		slog.Int("population", s.PopulationSize),
	)
}
