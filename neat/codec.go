package neat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformedGenome is returned when a genome document lacks a required field.
var ErrMalformedGenome = errors.New("malformed genome")

// On-disk layout. Required fields are pointers so their absence can be detected.
type nodeRecord struct {
	ID         *int     `json:"id"`
	Type       *string  `json:"type"`
	Activation *string  `json:"activation,omitempty"`
	Bias       *float64 `json:"bias,omitempty"`
}

type connectionRecord struct {
	Innovation *int     `json:"innovation"`
	Source     *int     `json:"source"`
	Target     *int     `json:"target"`
	Weight     *float64 `json:"weight"`
	Enabled    *bool    `json:"enabled,omitempty"`
}

type genomeRecord struct {
	Nodes       []nodeRecord       `json:"nodes"`
	Connections []connectionRecord `json:"connections"`
}

// EncodeGenome serialises a genome as JSON.
func EncodeGenome(g Genome) ([]byte, error) {
	rec := genomeRecord{
		Nodes:       make([]nodeRecord, len(g.Nodes)),
		Connections: make([]connectionRecord, len(g.Connections)),
	}
	for i, n := range g.Nodes {
		typ := n.Type.String()
		act := n.Activation.String()
		rec.Nodes[i] = nodeRecord{ID: &n.ID, Type: &typ, Activation: &act, Bias: &n.Bias}
	}
	for i, c := range g.Connections {
		rec.Connections[i] = connectionRecord{
			Innovation: &c.Innovation,
			Source:     &c.Source,
			Target:     &c.Target,
			Weight:     &c.Weight,
			Enabled:    &c.Enabled,
		}
	}
	return json.MarshalIndent(rec, "", "  ")
}

// DecodeGenome parses a JSON genome. Node id and type and connection
// innovation, source, target and weight are required. A missing activation
// means sigmoid, a missing bias 0 and a missing enabled flag true.
func DecodeGenome(data []byte) (Genome, error) {
	var rec genomeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Genome{}, fmt.Errorf("failed to parse genome: %w", err)
	}

	g := Genome{
		Nodes:       make([]NodeGene, 0, len(rec.Nodes)),
		Connections: make([]ConnectionGene, 0, len(rec.Connections)),
	}

	for i, n := range rec.Nodes {
		if n.ID == nil || n.Type == nil {
			return Genome{}, fmt.Errorf("%w: node %d needs id and type", ErrMalformedGenome, i)
		}
		node := NodeGene{
			ID:         *n.ID,
			Type:       ParseNodeType(*n.Type),
			Activation: Sigmoid,
		}
		if n.Activation != nil {
			node.Activation = ParseActivation(*n.Activation)
		}
		if n.Bias != nil {
			node.Bias = *n.Bias
		}
		g.Nodes = append(g.Nodes, node)
	}

	for i, c := range rec.Connections {
		if c.Innovation == nil || c.Source == nil || c.Target == nil || c.Weight == nil {
			return Genome{}, fmt.Errorf("%w: connection %d needs innovation, source, target and weight", ErrMalformedGenome, i)
		}
		conn := ConnectionGene{
			Innovation: *c.Innovation,
			Source:     *c.Source,
			Target:     *c.Target,
			Weight:     *c.Weight,
			Enabled:    true,
		}
		if c.Enabled != nil {
			conn.Enabled = *c.Enabled
		}
		g.Connections = append(g.Connections, conn)
	}

	return g, nil
}

// SaveGenome writes a genome to a JSON file.
func SaveGenome(g Genome, filePath string) error {
	data, err := EncodeGenome(g)
	if err != nil {
		return fmt.Errorf("failed to encode genome: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write genome file '%s': %w", filePath, err)
	}
	return nil
}

// LoadGenome reads a genome from a JSON file.
func LoadGenome(filePath string) (Genome, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Genome{}, fmt.Errorf("failed to read genome file '%s': %w", filePath, err)
	}
	g, err := DecodeGenome(data)
	if err != nil {
		return Genome{}, fmt.Errorf("failed to load genome file '%s': %w", filePath, err)
	}
	return g, nil
}
