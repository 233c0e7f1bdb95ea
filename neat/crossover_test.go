package neat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func innovations(g Genome) []int {
	out := make([]int, len(g.Connections))
	for i, c := range g.Connections {
		out[i] = c.Innovation
	}
	return out
}

func TestCrossoverWithSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, tr := newTestGenome(3, 2)
	MutateWeights(&g, rng, 1, 1.0, 0)
	require.True(t, MutateAddNode(&g, rng, tr))
	// Reenable everything so the disable re-roll cannot fire.
	for i := range g.Connections {
		g.Connections[i].Enabled = true
	}

	child := Crossover(g, g, rng, DefaultDisableProb)
	assert.Equal(t, g.Weights(), child.Weights())
	assert.Equal(t, innovations(g), innovations(child))
	assert.ElementsMatch(t, g.Nodes, child.Nodes)
}

func TestCrossoverGeneOwnership(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	fitter, tr := newTestGenome(2, 1)
	other := fitter.Clone()

	require.True(t, MutateAddNode(&fitter, rng, tr))
	tr.NewGeneration()
	require.True(t, MutateAddNode(&other, rng, tr))

	fitterOnly := map[int]bool{}
	for _, innov := range innovations(fitter)[2:] {
		fitterOnly[innov] = true
	}
	otherOnly := innovations(other)[2:]

	for trial := 0; trial < 50; trial++ {
		child := Crossover(fitter, other, rng, DefaultDisableProb)
		got := map[int]bool{}
		for _, innov := range innovations(child) {
			got[innov] = true
		}
		for innov := range fitterOnly {
			assert.True(t, got[innov], "fitter-only gene %d missing", innov)
		}
		for _, innov := range otherOnly {
			assert.False(t, got[innov], "other-only gene %d inherited", innov)
		}
		assert.Len(t, child.Connections, len(fitter.Connections))
	}
}

func TestCrossoverNodes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	fitter := Genome{
		Nodes: []NodeGene{
			{ID: 5, Type: HiddenNode, Activation: Tanh},
			{ID: 2, Type: OutputNode, Activation: Sigmoid},
			{ID: 0, Type: InputNode, Activation: Linear},
			{ID: 1, Type: InputNode, Activation: Linear},
		},
		Connections: []ConnectionGene{
			{Innovation: 1, Source: 0, Target: 5, Weight: 1, Enabled: true},
			{Innovation: 2, Source: 5, Target: 2, Weight: 1, Enabled: true},
			// Node 7 is only known to the other parent.
			{Innovation: 3, Source: 7, Target: 2, Weight: 1, Enabled: true},
		},
	}
	other := Genome{
		Nodes: []NodeGene{
			{ID: 5, Type: HiddenNode, Activation: ReLU, Bias: 9},
			{ID: 7, Type: HiddenNode, Activation: ReLU, Bias: 3},
		},
	}

	child := Crossover(fitter, other, rng, DefaultDisableProb)

	ids := make([]int, len(child.Nodes))
	for i, n := range child.Nodes {
		ids[i] = n.ID
	}
	assert.Equal(t, []int{0, 1, 2, 5, 7}, ids, "input 1 kept though unreferenced, sorted by id")

	n5, _ := child.NodeByID(5)
	assert.Equal(t, Tanh, n5.Activation, "fitter parent's node data wins")
	n7, _ := child.NodeByID(7)
	assert.Equal(t, 3.0, n7.Bias)
}

func TestCrossoverMatchingGeneInheritance(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	fitter, _ := newTestGenome(1, 1)
	other := fitter.Clone()
	fitter.Connections[0].Weight = 1
	other.Connections[0].Weight = -1

	const trials = 4000
	fromFitter := 0
	for i := 0; i < trials; i++ {
		child := Crossover(fitter, other, rng, DefaultDisableProb)
		if child.Connections[0].Weight == 1 {
			fromFitter++
		}
	}
	assert.InDelta(t, 0.5, float64(fromFitter)/trials, 0.1)
}

func TestCrossoverDisableRate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	fitter, _ := newTestGenome(1, 1)
	other := fitter.Clone()
	other.Connections[0].Enabled = false

	const trials = 4000
	disabled := 0
	for i := 0; i < trials; i++ {
		child := Crossover(fitter, other, rng, DefaultDisableProb)
		if !child.Connections[0].Enabled {
			disabled++
		}
	}
	assert.InDelta(t, DefaultDisableProb, float64(disabled)/trials, 0.15)
}
