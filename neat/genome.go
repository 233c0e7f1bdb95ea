package neat

import (
	"fmt"
	"sort"
)

// Genome is the evolvable description of a controller: an ordered list of
// node genes and an ordered list of connection genes.
//
// Connections are expected to reference existing node ids, but nothing here
// enforces it; the network compiler drops connections with dangling ends.
type Genome struct {
	Nodes       []NodeGene       `json:"nodes"`
	Connections []ConnectionGene `json:"connections"`
}

// Minimal builds the smallest fully-connected topology for nInputs sensors
// and nOutputs actuators.
//
// Input nodes get ids [0, nInputs) with Linear activation, output nodes get
// ids [nInputs, nInputs+nOutputs) with Sigmoid activation. Every input is
// connected to every output with weight 0, consuming one innovation number
// per connection from *nextInnovation.
func Minimal(nInputs, nOutputs int, nextInnovation *int) Genome {
	g := Genome{
		Nodes:       make([]NodeGene, 0, nInputs+nOutputs),
		Connections: make([]ConnectionGene, 0, nInputs*nOutputs),
	}

	for i := 0; i < nInputs; i++ {
		g.Nodes = append(g.Nodes, NodeGene{ID: i, Type: InputNode, Activation: Linear})
	}
	for o := 0; o < nOutputs; o++ {
		g.Nodes = append(g.Nodes, NodeGene{ID: nInputs + o, Type: OutputNode, Activation: Sigmoid})
	}

	for i := 0; i < nInputs; i++ {
		for o := 0; o < nOutputs; o++ {
			g.Connections = append(g.Connections, ConnectionGene{
				Innovation: *nextInnovation,
				Source:     i,
				Target:     nInputs + o,
				Weight:     0,
				Enabled:    true,
			})
			*nextInnovation++
		}
	}
	return g
}

// Clone returns a deep copy of the genome.
func (g Genome) Clone() Genome {
	c := Genome{}
	if g.Nodes != nil {
		c.Nodes = make([]NodeGene, len(g.Nodes))
		copy(c.Nodes, g.Nodes)
	}
	if g.Connections != nil {
		c.Connections = make([]ConnectionGene, len(g.Connections))
		copy(c.Connections, g.Connections)
	}
	return c
}

// MaxInnovation returns the largest innovation number in the genome, or 0 if
// it has no connections.
func (g Genome) MaxInnovation() int {
	maxInnov := 0
	for _, c := range g.Connections {
		maxInnov = max(maxInnov, c.Innovation)
	}
	return maxInnov
}

// MaxNodeID returns the largest node id in the genome, or 0 if it has no nodes.
func (g Genome) MaxNodeID() int {
	maxID := 0
	for _, n := range g.Nodes {
		maxID = max(maxID, n.ID)
	}
	return maxID
}

// NodeByID looks up a node gene by id.
func (g Genome) NodeByID(id int) (NodeGene, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeGene{}, false
}

// CountNodes returns the number of nodes with the given type.
func (g Genome) CountNodes(t NodeType) int {
	n := 0
	for _, node := range g.Nodes {
		if node.Type == t {
			n++
		}
	}
	return n
}

// Weights returns the connection weights in gene order.
func (g Genome) Weights() []float64 {
	w := make([]float64, len(g.Connections))
	for i, c := range g.Connections {
		w[i] = c.Weight
	}
	return w
}

// String returns a multi-line description of the genome, connections sorted
// by innovation number.
func (g Genome) String() string {
	conns := make([]ConnectionGene, len(g.Connections))
	copy(conns, g.Connections)
	sort.Slice(conns, func(i, j int) bool { return conns[i].Innovation < conns[j].Innovation })

	s := fmt.Sprintf("Genome(nodes: %d, connections: %d)\n", len(g.Nodes), len(g.Connections))
	for _, n := range g.Nodes {
		s += "  " + n.String() + "\n"
	}
	for _, c := range conns {
		s += "  " + c.String() + "\n"
	}
	return s
}
