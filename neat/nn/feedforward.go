package nn

import (
	"github.com/baldhumanity/neat-boids/neat"
)

// ProcessingNetwork is anything that maps a sensor vector to an actuator
// vector. Implementations write into the caller's output buffer and must
// tolerate buffers of any length.
type ProcessingNetwork interface {
	Activate(inputs, outputs []float64)
	Reset()
}

var (
	_ ProcessingNetwork = (*FeedForwardNetwork)(nil)
	_ ProcessingNetwork = (*DirectWire)(nil)
)

// neuralNode is the runtime state of one genome node.
type neuralNode struct {
	bias       float64
	activation neat.ActivationKind
	value      float64
	incoming   []int // Indices into FeedForwardNetwork.connections.
}

// link is an enabled connection with both ends resolved to node indices.
type link struct {
	source int
	target int
	weight float64
}

// FeedForwardNetwork is a genome compiled into flat arrays with a fixed
// evaluation order.
type FeedForwardNetwork struct {
	nodes       []neuralNode
	connections []link
	inputs      []int // Node indices of input nodes, in genome order.
	outputs     []int // Node indices of output nodes, in genome order.
	evalOrder   []int // Non-input node indices in topological order.
}

// New compiles a genome into a runnable network.
//
// Only enabled connections whose endpoints both exist are kept. Nodes that
// sit on a cycle never become ready during the topological sort and are left
// out of evaluation; their value stays 0.
func New(g neat.Genome) *FeedForwardNetwork {
	net := &FeedForwardNetwork{
		nodes: make([]neuralNode, len(g.Nodes)),
	}

	index := make(map[int]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
		net.nodes[i] = neuralNode{bias: n.Bias, activation: n.Activation}
		switch n.Type {
		case neat.InputNode:
			net.inputs = append(net.inputs, i)
		case neat.OutputNode:
			net.outputs = append(net.outputs, i)
		}
	}

	for _, c := range g.Connections {
		if !c.Enabled {
			continue
		}
		src, okSrc := index[c.Source]
		tgt, okTgt := index[c.Target]
		if !okSrc || !okTgt {
			continue
		}
		net.nodes[tgt].incoming = append(net.nodes[tgt].incoming, len(net.connections))
		net.connections = append(net.connections, link{source: src, target: tgt, weight: c.Weight})
	}

	net.evalOrder = topologicalOrder(g.Nodes, net.connections)
	return net
}

// topologicalOrder runs Kahn's algorithm over the node arena. Inputs seed the
// queue and never count incoming edges. Returned order excludes inputs.
func topologicalOrder(nodes []neat.NodeGene, connections []link) []int {
	inDegree := make([]int, len(nodes))
	outgoing := make([][]int, len(nodes))
	for _, c := range connections {
		outgoing[c.source] = append(outgoing[c.source], c.target)
		if nodes[c.target].Type != neat.InputNode {
			inDegree[c.target]++
		}
	}

	visited := make([]bool, len(nodes))
	queue := make([]int, 0, len(nodes))
	for i, n := range nodes {
		if n.Type == neat.InputNode || inDegree[i] == 0 {
			queue = append(queue, i)
			visited[i] = true
		}
	}

	order := make([]int, 0, len(nodes))
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if nodes[u].Type != neat.InputNode {
			order = append(order, u)
		}
		for _, v := range outgoing[u] {
			inDegree[v]--
			if inDegree[v] <= 0 && !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return order
}

// Activate runs one forward pass. Missing inputs read as 0 and extra inputs
// are ignored; output slots beyond the network's outputs are set to 0.
func (net *FeedForwardNetwork) Activate(inputs, outputs []float64) {
	for i, ni := range net.inputs {
		v := 0.0
		if i < len(inputs) {
			v = inputs[i]
		}
		net.nodes[ni].value = v
	}

	for _, ni := range net.evalOrder {
		node := &net.nodes[ni]
		sum := node.bias
		for _, ci := range node.incoming {
			c := net.connections[ci]
			sum += net.nodes[c.source].value * c.weight
		}
		node.value = node.activation.Apply(sum)
	}

	for i := range outputs {
		if i < len(net.outputs) {
			outputs[i] = net.nodes[net.outputs[i]].value
		} else {
			outputs[i] = 0
		}
	}
}

// Reset zeroes every cached node value.
func (net *FeedForwardNetwork) Reset() {
	for i := range net.nodes {
		net.nodes[i].value = 0
	}
}

// NumInputs returns the number of input nodes.
func (net *FeedForwardNetwork) NumInputs() int { return len(net.inputs) }

// NumOutputs returns the number of output nodes.
func (net *FeedForwardNetwork) NumOutputs() int { return len(net.outputs) }

// NumEvaluated returns how many non-input nodes take part in a forward pass.
// It is smaller than the non-input node count when the genome has a cycle.
func (net *FeedForwardNetwork) NumEvaluated() int { return len(net.evalOrder) }
