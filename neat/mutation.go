package neat

import (
	"math/rand"
)

// DefaultAddConnectionAttempts is how many random node pairs MutateAddConnection
// tries before giving up.
const DefaultAddConnectionAttempts = 20

// Range of a freshly drawn replacement weight.
const (
	replaceWeightMin = -2.0
	replaceWeightMax = 2.0
)

// MutateWeights perturbs or replaces each connection weight independently.
//
// For every connection a single uniform draw r decides: r < replaceProb
// replaces the weight with a value from U(-2, 2); r < replaceProb+perturbProb
// adds N(0, sigma) noise; otherwise the weight is left alone.
func MutateWeights(g *Genome, rng *rand.Rand, perturbProb, sigma, replaceProb float64) {
	for i := range g.Connections {
		c := &g.Connections[i]
		r := rng.Float64()
		switch {
		case r < replaceProb:
			c.Weight = replaceWeightMin + rng.Float64()*(replaceWeightMax-replaceWeightMin)
		case r < replaceProb+perturbProb:
			c.Weight += rng.NormFloat64() * sigma
		}
	}
}

// MutateAddConnection tries up to maxAttempts random ordered node pairs and
// adds a zero-weight, enabled connection for the first acceptable one.
//
// A pair is rejected when source and target are the same node, the target is
// an input, the source is an output, or a source->target connection already
// exists. Only that direction is checked: target->source may already exist.
// Returns false when nothing was added.
func MutateAddConnection(g *Genome, rng *rand.Rand, tracker *InnovationTracker, maxAttempts int) bool {
	if len(g.Nodes) < 2 {
		return false
	}

	existing := make(map[connectionKey]struct{}, len(g.Connections))
	for _, c := range g.Connections {
		existing[connectionKey{Source: c.Source, Target: c.Target}] = struct{}{}
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		si := rng.Intn(len(g.Nodes))
		ti := rng.Intn(len(g.Nodes))
		if si == ti {
			continue
		}

		src := g.Nodes[si]
		tgt := g.Nodes[ti]

		if tgt.Type == InputNode {
			continue
		}
		// Outputs never originate a connection; this is the feed-forward guard.
		if src.Type == OutputNode {
			continue
		}
		if _, ok := existing[connectionKey{Source: src.ID, Target: tgt.ID}]; ok {
			continue
		}

		innov := tracker.GetOrCreate(src.ID, tgt.ID)
		g.Connections = append(g.Connections, ConnectionGene{
			Innovation: innov,
			Source:     src.ID,
			Target:     tgt.ID,
			Weight:     0,
			Enabled:    true,
		})
		return true
	}

	return false
}

// MutateAddNode splits a random enabled connection with a new hidden node.
//
// The split connection is disabled. The new node (Sigmoid, bias 0) gets id
// MaxNodeID()+1 and two enabled connections: source->new with weight 1 and
// new->target with the old weight. Returns false if no connection is enabled.
func MutateAddNode(g *Genome, rng *rand.Rand, tracker *InnovationTracker) bool {
	enabled := make([]int, 0, len(g.Connections))
	for i, c := range g.Connections {
		if c.Enabled {
			enabled = append(enabled, i)
		}
	}
	if len(enabled) == 0 {
		return false
	}

	ci := enabled[rng.Intn(len(enabled))]
	split := g.Connections[ci]
	g.Connections[ci].Enabled = false

	newID := g.MaxNodeID() + 1
	g.Nodes = append(g.Nodes, NodeGene{ID: newID, Type: HiddenNode, Activation: Sigmoid, Bias: 0})

	inInnov := tracker.GetOrCreate(split.Source, newID)
	g.Connections = append(g.Connections, ConnectionGene{
		Innovation: inInnov,
		Source:     split.Source,
		Target:     newID,
		Weight:     1.0,
		Enabled:    true,
	})

	outInnov := tracker.GetOrCreate(newID, split.Target)
	g.Connections = append(g.Connections, ConnectionGene{
		Innovation: outInnov,
		Source:     newID,
		Target:     split.Target,
		Weight:     split.Weight,
		Enabled:    true,
	})

	return true
}

// MutateToggleConnection flips the enabled flag of one random connection.
func MutateToggleConnection(g *Genome, rng *rand.Rand) {
	if len(g.Connections) == 0 {
		return
	}
	c := &g.Connections[rng.Intn(len(g.Connections))]
	c.Enabled = !c.Enabled
}

// MutateDeleteConnection removes one random connection and then every hidden
// node that no remaining connection touches. Returns false if there was
// nothing to delete.
func MutateDeleteConnection(g *Genome, rng *rand.Rand) bool {
	if len(g.Connections) == 0 {
		return false
	}

	ci := rng.Intn(len(g.Connections))
	g.Connections = append(g.Connections[:ci], g.Connections[ci+1:]...)

	connected := make(map[int]struct{}, 2*len(g.Connections))
	for _, c := range g.Connections {
		connected[c.Source] = struct{}{}
		connected[c.Target] = struct{}{}
	}

	kept := g.Nodes[:0]
	for _, n := range g.Nodes {
		if n.Type == HiddenNode {
			if _, ok := connected[n.ID]; !ok {
				continue
			}
		}
		kept = append(kept, n)
	}
	g.Nodes = kept

	return true
}
