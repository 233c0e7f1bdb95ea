package neat

import (
	"fmt"
	"strings"
)

// NodeType is the role a node plays in the network.
type NodeType int

const (
	InputNode NodeType = iota
	OutputNode
	HiddenNode
)

var nodeTypeNames = map[NodeType]string{
	InputNode:  "input",
	OutputNode: "output",
	HiddenNode: "hidden",
}

// String returns the lowercase name used in genome files.
func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// ParseNodeType maps a genome-file name to a NodeType.
// Unknown names are treated as hidden nodes.
func ParseNodeType(s string) NodeType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input":
		return InputNode
	case "output":
		return OutputNode
	default:
		return HiddenNode
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *NodeType) UnmarshalText(text []byte) error {
	*t = ParseNodeType(string(text))
	return nil
}

// --------------------------- NodeGene ---------------------------

// NodeGene represents a node (neuron) in the genome.
type NodeGene struct {
	ID         int            `json:"id"`   // Unique, non-negative node id.
	Type       NodeType       `json:"type"` // Input, Output or Hidden.
	Activation ActivationKind `json:"activation"`
	Bias       float64        `json:"bias"`
}

// String returns a string representation of the NodeGene.
func (ng NodeGene) String() string {
	return fmt.Sprintf("NodeGene(ID: %d, Type: %s, Activation: %s, Bias: %.3f)",
		ng.ID, ng.Type, ng.Activation, ng.Bias)
}

// --------------------------- ConnectionGene ---------------------------

// ConnectionGene represents a directed, weighted connection between two nodes.
// Two connections with the same Innovation number describe the same
// structural mutation and are aligned during crossover and speciation.
type ConnectionGene struct {
	Innovation int     `json:"innovation"`
	Source     int     `json:"source"` // Source node id.
	Target     int     `json:"target"` // Target node id.
	Weight     float64 `json:"weight"`
	Enabled    bool    `json:"enabled"`
}

// String returns a string representation of the ConnectionGene.
func (cg ConnectionGene) String() string {
	return fmt.Sprintf("ConnGene(Innov: %d, %d->%d, Weight: %.3f, Enabled: %t)",
		cg.Innovation, cg.Source, cg.Target, cg.Weight, cg.Enabled)
}
