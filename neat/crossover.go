package neat

import (
	"math/rand"
	"sort"
)

// DefaultDisableProb is the chance an inherited gene stays disabled when
// either parent has it disabled.
const DefaultDisableProb = 0.75

// Crossover produces a child genome from two parents. Order matters: fitter
// is the dominant parent.
//
// Every connection of fitter is inherited. When other carries the same
// innovation, one of the two copies is picked with equal probability, and if
// the gene is disabled in either parent the child's copy is disabled with
// probability disableProb. Genes only other carries are never inherited.
//
// The child's nodes are those referenced by its connections plus every input
// and output of fitter, taken from fitter when present there, sorted by id.
func Crossover(fitter, other Genome, rng *rand.Rand, disableProb float64) Genome {
	otherByInnov := make(map[int]ConnectionGene, len(other.Connections))
	for _, c := range other.Connections {
		otherByInnov[c.Innovation] = c
	}

	child := Genome{
		Connections: make([]ConnectionGene, 0, len(fitter.Connections)),
	}

	for _, fc := range fitter.Connections {
		oc, matching := otherByInnov[fc.Innovation]
		if !matching {
			child.Connections = append(child.Connections, fc)
			continue
		}

		gene := fc
		if rng.Float64() >= 0.5 {
			gene = oc
		}
		if !fc.Enabled || !oc.Enabled {
			gene.Enabled = rng.Float64() >= disableProb
		}
		child.Connections = append(child.Connections, gene)
	}

	needed := make(map[int]struct{}, len(fitter.Nodes))
	for _, c := range child.Connections {
		needed[c.Source] = struct{}{}
		needed[c.Target] = struct{}{}
	}
	for _, n := range fitter.Nodes {
		if n.Type == InputNode || n.Type == OutputNode {
			needed[n.ID] = struct{}{}
		}
	}

	fitterNodes := indexNodes(fitter.Nodes)
	otherNodes := indexNodes(other.Nodes)

	child.Nodes = make([]NodeGene, 0, len(needed))
	for id := range needed {
		if n, ok := fitterNodes[id]; ok {
			child.Nodes = append(child.Nodes, n)
		} else if n, ok := otherNodes[id]; ok {
			child.Nodes = append(child.Nodes, n)
		}
	}
	sort.Slice(child.Nodes, func(i, j int) bool { return child.Nodes[i].ID < child.Nodes[j].ID })

	return child
}

func indexNodes(nodes []NodeGene) map[int]NodeGene {
	m := make(map[int]NodeGene, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}
