package neat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimal(t *testing.T) {
	cursor := 7
	g := Minimal(3, 2, &cursor)

	require.Len(t, g.Nodes, 5)
	require.Len(t, g.Connections, 6)
	assert.Equal(t, 13, cursor)

	assert.Equal(t, 3, g.CountNodes(InputNode))
	assert.Equal(t, 2, g.CountNodes(OutputNode))
	assert.Equal(t, 0, g.CountNodes(HiddenNode))

	for i, n := range g.Nodes {
		assert.Equal(t, i, n.ID)
		if n.Type == InputNode {
			assert.Equal(t, Linear, n.Activation)
		} else {
			assert.Equal(t, Sigmoid, n.Activation)
		}
	}

	seen := map[int]bool{}
	for _, c := range g.Connections {
		assert.True(t, c.Enabled)
		assert.Zero(t, c.Weight)
		assert.Less(t, c.Source, 3)
		assert.GreaterOrEqual(t, c.Target, 3)
		assert.GreaterOrEqual(t, c.Innovation, 7)
		assert.Less(t, c.Innovation, 13)
		assert.False(t, seen[c.Innovation], "duplicate innovation %d", c.Innovation)
		seen[c.Innovation] = true
	}
}

func TestMinimalNoInputs(t *testing.T) {
	cursor := 1
	g := Minimal(0, 2, &cursor)
	assert.Len(t, g.Nodes, 2)
	assert.Empty(t, g.Connections)
	assert.Equal(t, 1, cursor)
}

func TestGenomeClone(t *testing.T) {
	cursor := 1
	g := Minimal(2, 1, &cursor)
	c := g.Clone()
	require.Equal(t, g, c)

	c.Connections[0].Weight = 5
	c.Nodes[0].Bias = 1
	assert.Zero(t, g.Connections[0].Weight)
	assert.Zero(t, g.Nodes[0].Bias)

	empty := Genome{}.Clone()
	assert.Nil(t, empty.Nodes)
	assert.Nil(t, empty.Connections)
}

func TestGenomeMaxima(t *testing.T) {
	g := Genome{
		Nodes: []NodeGene{{ID: 4}, {ID: 9}, {ID: 2}},
		Connections: []ConnectionGene{
			{Innovation: 3}, {Innovation: 11}, {Innovation: 5},
		},
	}
	assert.Equal(t, 9, g.MaxNodeID())
	assert.Equal(t, 11, g.MaxInnovation())

	assert.Zero(t, Genome{}.MaxNodeID())
	assert.Zero(t, Genome{}.MaxInnovation())
}

func TestNodeByID(t *testing.T) {
	cursor := 1
	g := Minimal(2, 1, &cursor)

	n, ok := g.NodeByID(2)
	require.True(t, ok)
	assert.Equal(t, OutputNode, n.Type)

	_, ok = g.NodeByID(42)
	assert.False(t, ok)
}

func TestParseNames(t *testing.T) {
	assert.Equal(t, InputNode, ParseNodeType("input"))
	assert.Equal(t, OutputNode, ParseNodeType("Output"))
	assert.Equal(t, HiddenNode, ParseNodeType("hidden"))
	assert.Equal(t, HiddenNode, ParseNodeType("bogus"))

	assert.Equal(t, Sigmoid, ParseActivation("sigmoid"))
	assert.Equal(t, Tanh, ParseActivation("tanh"))
	assert.Equal(t, ReLU, ParseActivation("relu"))
	assert.Equal(t, Linear, ParseActivation("linear"))
	assert.Equal(t, Linear, ParseActivation("softplus"))

	for _, k := range []ActivationKind{Sigmoid, Tanh, ReLU, Linear} {
		assert.Equal(t, k, ParseActivation(k.String()))
	}
}

func TestActivationApply(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid.Apply(0), 1e-12)
	assert.InDelta(t, 0.0, Tanh.Apply(0), 1e-12)
	assert.InDelta(t, 0.7615941559557649, Tanh.Apply(1), 1e-12)
	assert.Equal(t, 0.0, ReLU.Apply(-3))
	assert.Equal(t, 3.0, ReLU.Apply(3))
	assert.Equal(t, -3.0, Linear.Apply(-3))
}
