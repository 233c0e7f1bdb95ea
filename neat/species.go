package neat

import (
	"math"
)

// Species represents a group of genetically similar genomes.
type Species struct {
	ID             int     // Unique identifier, never reused within a run.
	Representative Genome  // Snapshot used only for membership tests.
	Members        []int   // Population indices, in population order.
	BestFitness    float64 // Best member fitness seen so far.
	Stagnation     int     // Generations since BestFitness last improved.
}

// NewSpecies creates a species with a single founding member.
func NewSpecies(id int, representative Genome, founder int) *Species {
	return &Species{
		ID:             id,
		Representative: representative,
		Members:        []int{founder},
	}
}

// Size returns the current member count.
func (s *Species) Size() int {
	return len(s.Members)
}

// --------------------------- Compatibility ---------------------------

// CompatibilityParams weights the terms of the compatibility distance.
type CompatibilityParams struct {
	C1                 float64 // Excess gene coefficient.
	C2                 float64 // Disjoint gene coefficient.
	C3                 float64 // Mean weight difference coefficient.
	NormaliseThreshold int     // Floor for the gene-count normaliser N.
}

// DefaultCompatibilityParams returns c1=1, c2=1, c3=0.4 and a normaliser floor of 20.
func DefaultCompatibilityParams() CompatibilityParams {
	return CompatibilityParams{C1: 1.0, C2: 1.0, C3: 0.4, NormaliseThreshold: 20}
}

// CompatibilityDistance measures how far apart two genomes are:
//
//	c1*E/N + c2*D/N + c3*W
//
// E and D count excess and disjoint connection genes, W is the mean absolute
// weight difference of matching genes and N is the larger connection count,
// never less than NormaliseThreshold.
func CompatibilityDistance(a, b Genome, params CompatibilityParams) float64 {
	if len(a.Connections) == 0 && len(b.Connections) == 0 {
		return 0
	}

	aByInnov := make(map[int]struct{}, len(a.Connections))
	for _, c := range a.Connections {
		aByInnov[c.Innovation] = struct{}{}
	}
	bByInnov := make(map[int]float64, len(b.Connections))
	for _, c := range b.Connections {
		bByInnov[c.Innovation] = c.Weight
	}

	// Genes above the smaller of the two maxima are excess.
	excessLine := min(a.MaxInnovation(), b.MaxInnovation())

	excess, disjoint, matching := 0, 0, 0
	weightDiff := 0.0

	classify := func(innov int) {
		if innov > excessLine {
			excess++
		} else {
			disjoint++
		}
	}

	// Walk the gene lists, not the maps, so the float sum is reproducible.
	for _, c := range a.Connections {
		if wb, ok := bByInnov[c.Innovation]; ok {
			weightDiff += math.Abs(c.Weight - wb)
			matching++
		} else {
			classify(c.Innovation)
		}
	}
	for _, c := range b.Connections {
		if _, ok := aByInnov[c.Innovation]; !ok {
			classify(c.Innovation)
		}
	}

	meanWeightDiff := 0.0
	if matching > 0 {
		meanWeightDiff = weightDiff / float64(matching)
	}

	n := float64(max(len(a.Connections), len(b.Connections), params.NormaliseThreshold))

	return params.C1*float64(excess)/n +
		params.C2*float64(disjoint)/n +
		params.C3*meanWeightDiff
}

// --------------------------- Speciation ---------------------------

// AssignSpecies partitions genomes into species.
//
// Every genome, in population order, joins the first species whose
// representative lies strictly within threshold; otherwise it founds a new
// species with id *nextID (which is then incremented). Species left without
// members are dropped, and each survivor's representative becomes its first
// member. The returned slice keeps the existing species' relative order with
// new species appended.
func AssignSpecies(species []*Species, genomes []Genome, params CompatibilityParams, threshold float64, nextID *int) []*Species {
	for _, s := range species {
		s.Members = s.Members[:0]
	}

	for i, g := range genomes {
		placed := false
		for _, s := range species {
			if CompatibilityDistance(g, s.Representative, params) < threshold {
				s.Members = append(s.Members, i)
				placed = true
				break
			}
		}
		if !placed {
			species = append(species, NewSpecies(*nextID, g.Clone(), i))
			*nextID++
		}
	}

	alive := species[:0]
	for _, s := range species {
		if len(s.Members) > 0 {
			alive = append(alive, s)
		}
	}
	// Clear the tail so dropped species can be collected.
	for i := len(alive); i < len(species); i++ {
		species[i] = nil
	}

	for _, s := range alive {
		s.Representative = genomes[s.Members[0]].Clone()
	}

	return alive
}
