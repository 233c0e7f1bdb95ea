package neat

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// FitnessFunc scores one genome. It is called exactly once per genome per
// Evaluate, with the genome's index in the population. The genome must not
// be modified.
type FitnessFunc func(index int, g Genome) float64

// Option configures optional Population collaborators.
type Option func(*Population)

// WithLogger sets the logger used for species and generation events.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Population) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithReporter adds a reporter that receives the stats of every evaluated generation.
func WithReporter(r Reporter) Option {
	return func(p *Population) {
		if r != nil {
			p.reporters = append(p.reporters, r)
		}
	}
}

// Population holds the state of the NEAT evolutionary process.
//
// A Population is not safe for concurrent use. All randomness comes from
// the *rand.Rand handed to NewPopulation, so a run is reproducible from its
// seed.
type Population struct {
	Config *Config

	genomes []Genome
	fitness []float64
	species []*Species

	tracker      *InnovationTracker
	stagnation   *Stagnation
	reproduction *Reproduction
	rng          *rand.Rand

	generation    int
	nextSpeciesID int

	logger    *slog.Logger
	reporters []Reporter
}

// NewPopulation creates PopulationSize copies of seed. Every copy but the
// first gets one weight mutation pass, then the population is speciated.
// The innovation counter starts just past the seed's largest innovation.
func NewPopulation(seed Genome, config *Config, rng *rand.Rand, opts ...Option) (*Population, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create population: %w", err)
	}

	tracker := NewInnovationTracker(seed.MaxInnovation() + 1)
	p := &Population{
		Config:        config,
		tracker:       tracker,
		stagnation:    NewStagnation(&config.Stagnation),
		reproduction:  NewReproduction(config, rng, tracker),
		rng:           rng,
		nextSpeciesID: 1,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	size := config.Neat.PopulationSize
	m := config.Mutation
	p.genomes = make([]Genome, size)
	for i := range p.genomes {
		p.genomes[i] = seed.Clone()
		if i > 0 {
			MutateWeights(&p.genomes[i], rng, m.WeightPerturbProb, m.WeightSigma, m.WeightReplaceProb)
		}
	}
	p.fitness = make([]float64, size)

	p.speciate()
	return p, nil
}

// Evaluate scores every genome with fn, updates each species' best fitness
// and stagnation counter, then logs and reports the generation summary.
func (p *Population) Evaluate(fn FitnessFunc) {
	for i := range p.genomes {
		p.fitness[i] = fn(i, p.genomes[i])
	}

	p.stagnation.Update(p.species, p.fitness)

	stats := p.Stats()
	p.logger.Info("generation evaluated", "stats", stats)
	for _, r := range p.reporters {
		if err := r.ReportGeneration(stats); err != nil {
			p.logger.Warn("reporter failed", "generation", p.generation, "error", err)
		}
	}
}

// AdvanceGeneration replaces the population with the next generation:
// stagnant species are culled, offspring quotas are assigned by shared
// fitness, elites are copied, the rest is bred and mutated, and the new
// population is speciated. Fitness is reset to 0.
func (p *Population) AdvanceGeneration() {
	kept, removed := p.stagnation.RemoveStagnant(p.species)
	for _, s := range removed {
		p.logger.Info("species removed due to stagnation",
			"species", s.ID, "stagnation", s.Stagnation, "best_fitness", s.BestFitness)
	}
	if len(kept) == 0 {
		fallback := NewSpecies(p.nextSpeciesID, p.genomes[0].Clone(), 0)
		p.nextSpeciesID++
		kept = append(kept, fallback)
		p.logger.Debug("created fallback species", "species", fallback.ID)
	}
	p.species = kept

	p.genomes = p.reproduction.Reproduce(p.species, p.genomes, p.fitness)
	p.fitness = make([]float64, len(p.genomes))

	p.tracker.NewGeneration()
	p.generation++

	p.speciate()
}

// speciate reassigns every genome to a species and logs species turnover.
func (p *Population) speciate() {
	before := make(map[int]struct{}, len(p.species))
	for _, s := range p.species {
		before[s.ID] = struct{}{}
	}

	p.species = AssignSpecies(p.species, p.genomes, p.Config.Compatibility.Params(),
		p.Config.Compatibility.Threshold, &p.nextSpeciesID)

	for _, s := range p.species {
		if _, ok := before[s.ID]; ok {
			delete(before, s.ID)
			continue
		}
		p.logger.Debug("created new species", "species", s.ID, "generation", p.generation, "members", s.Size())
	}
	for id := range before {
		p.logger.Debug("species went extinct", "species", id, "generation", p.generation)
	}
}

// --------------------------- Accessors ---------------------------

// Genome returns the genome at index i.
func (p *Population) Genome(i int) Genome {
	return p.genomes[i]
}

// Genomes returns the current genomes in population order. The slice is a
// copy; the genomes themselves are shared and must not be modified.
func (p *Population) Genomes() []Genome {
	out := make([]Genome, len(p.genomes))
	copy(out, p.genomes)
	return out
}

// Size returns the number of genomes.
func (p *Population) Size() int {
	return len(p.genomes)
}

// Generation returns how many times AdvanceGeneration has run.
func (p *Population) Generation() int {
	return p.generation
}

// SpeciesCount returns the number of live species.
func (p *Population) SpeciesCount() int {
	return len(p.species)
}

// Species returns the live species. They are owned by the population.
func (p *Population) Species() []*Species {
	out := make([]*Species, len(p.species))
	copy(out, p.species)
	return out
}

// Fitness returns the last evaluated fitness of genome i, or 0 before evaluation.
func (p *Population) Fitness(i int) float64 {
	return p.fitness[i]
}

// BestGenome returns a copy of the fittest genome of the current generation.
// The lowest index wins ties.
func (p *Population) BestGenome() Genome {
	return p.genomes[p.bestIndex()].Clone()
}

// BestFitness returns the highest fitness of the current generation.
func (p *Population) BestFitness() float64 {
	return p.fitness[p.bestIndex()]
}

// InnovationTracker returns the tracker shared by all mutations of this population.
func (p *Population) InnovationTracker() *InnovationTracker {
	return p.tracker
}

// Stats summarises the current fitness array.
func (p *Population) Stats() GenerationStats {
	return ComputeGenerationStats(p.generation, p.fitness, len(p.species))
}

func (p *Population) bestIndex() int {
	best := 0
	for i, f := range p.fitness {
		if f > p.fitness[best] {
			best = i
		}
	}
	return best
}
