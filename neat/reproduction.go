package neat

import (
	"math"
	"math/rand"
	"sort"
)

// maxDistinctParentRetries bounds how often a second parent is redrawn when
// it equals the first.
const maxDistinctParentRetries = 5

// Reproduction builds the next generation from the current species.
type Reproduction struct {
	Config  *Config
	rng     *rand.Rand
	tracker *InnovationTracker
}

// NewReproduction creates a new reproduction manager. rng and tracker are
// shared with the owning population.
func NewReproduction(config *Config, rng *rand.Rand, tracker *InnovationTracker) *Reproduction {
	return &Reproduction{
		Config:  config,
		rng:     rng,
		tracker: tracker,
	}
}

// Reproduce produces exactly one genome per offspring slot of every species.
//
// Members of each species are sorted by descending fitness in place. The top
// Elitism members are copied unchanged; the rest of the quota is bred from
// the top SurvivalRate fraction of the species.
func (r *Reproduction) Reproduce(species []*Species, genomes []Genome, fitness []float64) []Genome {
	popSize := r.Config.Neat.PopulationSize
	quotas := computeOffspringQuotas(species, fitness, popSize)

	for _, s := range species {
		sortByFitness(s.Members, fitness)
	}

	next := make([]Genome, 0, popSize)
	for si, s := range species {
		count := quotas[si]

		elites := min(r.Config.Reproduction.Elitism, len(s.Members), count)
		for e := 0; e < elites; e++ {
			next = append(next, genomes[s.Members[e]].Clone())
		}

		survivors := max(1, int(math.Ceil(float64(len(s.Members))*r.Config.Reproduction.SurvivalRate)))
		pool := s.Members[:min(survivors, len(s.Members))]

		for i := elites; i < count; i++ {
			next = append(next, r.reproduceFromPool(pool, genomes, fitness))
		}
	}
	return next
}

// computeOffspringQuotas splits popSize offspring slots between species in
// proportion to their summed shared fitness, each species getting at least
// one. With no positive shared fitness the slots are split evenly. Rounding
// error is then absorbed by the species with the largest quota.
func computeOffspringQuotas(species []*Species, fitness []float64, popSize int) []int {
	quotas := make([]int, len(species))
	if len(species) == 0 {
		return quotas
	}

	speciesAdjusted := make([]float64, len(species))
	totalAdjusted := 0.0
	for si, s := range species {
		size := float64(len(s.Members))
		for _, idx := range s.Members {
			adj := fitness[idx] / size
			speciesAdjusted[si] += adj
			totalAdjusted += adj
		}
	}

	total := 0
	if totalAdjusted > 0 {
		for si := range species {
			quotas[si] = max(1, int(math.Round(speciesAdjusted[si]/totalAdjusted*float64(popSize))))
			total += quotas[si]
		}
	} else {
		perSpecies := popSize / len(species)
		for si := range species {
			quotas[si] = perSpecies
			total += perSpecies
		}
	}

	for total > popSize {
		largest := argmaxInt(quotas)
		if quotas[largest] <= 1 {
			break
		}
		quotas[largest]--
		total--
	}
	for total < popSize {
		quotas[argmaxInt(quotas)]++
		total++
	}
	return quotas
}

// reproduceFromPool breeds one mutated child from a species' breeding pool.
func (r *Reproduction) reproduceFromPool(pool []int, genomes []Genome, fitness []float64) Genome {
	var child Genome
	k := r.Config.Reproduction.TournamentSize

	if len(pool) == 1 || r.rng.Float64() >= r.Config.Crossover.CrossoverProb {
		parent := tournamentSelect(r.rng, pool, fitness, k)
		child = genomes[parent].Clone()
	} else {
		p1 := tournamentSelect(r.rng, pool, fitness, k)
		p2 := tournamentSelect(r.rng, pool, fitness, k)
		for attempts := 0; p2 == p1 && attempts < maxDistinctParentRetries; attempts++ {
			p2 = tournamentSelect(r.rng, pool, fitness, k)
		}
		// Fitter parent first; ties go to the first pick.
		if fitness[p1] >= fitness[p2] {
			child = Crossover(genomes[p1], genomes[p2], r.rng, r.Config.Crossover.DisableProb)
		} else {
			child = Crossover(genomes[p2], genomes[p1], r.rng, r.Config.Crossover.DisableProb)
		}
	}

	r.Mutate(&child)
	return child
}

// Mutate draws an independent coin for each operator and applies those that
// fire, in the order weights, add connection, add node, toggle, delete.
func (r *Reproduction) Mutate(g *Genome) {
	m := r.Config.Mutation

	if r.rng.Float64() < m.WeightMutateProb {
		MutateWeights(g, r.rng, m.WeightPerturbProb, m.WeightSigma, m.WeightReplaceProb)
	}
	if r.rng.Float64() < m.AddConnectionProb {
		MutateAddConnection(g, r.rng, r.tracker, m.AddConnectionAttempts)
	}
	if r.rng.Float64() < m.AddNodeProb {
		MutateAddNode(g, r.rng, r.tracker)
	}
	if r.rng.Float64() < m.ToggleConnectionProb {
		MutateToggleConnection(g, r.rng)
	}
	if r.rng.Float64() < m.DeleteConnectionProb {
		MutateDeleteConnection(g, r.rng)
	}
}

// tournamentSelect samples k members with replacement and returns the one
// with the highest fitness. Earlier picks win ties.
func tournamentSelect(rng *rand.Rand, members []int, fitness []float64, k int) int {
	best := members[rng.Intn(len(members))]
	for i := 1; i < k; i++ {
		candidate := members[rng.Intn(len(members))]
		if fitness[candidate] > fitness[best] {
			best = candidate
		}
	}
	return best
}

// sortByFitness orders population indices by descending fitness. Equal
// fitness keeps population order.
func sortByFitness(members []int, fitness []float64) {
	sort.SliceStable(members, func(i, j int) bool {
		return fitness[members[i]] > fitness[members[j]]
	})
}

// argmaxInt returns the index of the first largest value.
func argmaxInt(xs []int) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
