package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DirectWire is a fixed single-layer network: every input feeds every
// output through a settable weight, and each output applies a sigmoid.
// It is useful as a hand-wired controller in tests.
type DirectWire struct {
	weights [][]float64 // weights[out][in]
	biases  []float64
	in      []float64 // Reused input buffer.
}

// NewDirectWire creates a network with all weights and biases at 0.
func NewDirectWire(nIn, nOut int) *DirectWire {
	d := &DirectWire{
		weights: make([][]float64, nOut),
		biases:  make([]float64, nOut),
		in:      make([]float64, nIn),
	}
	for j := range d.weights {
		d.weights[j] = make([]float64, nIn)
	}
	return d
}

// SetWeight sets the weight from input in to output out. Out-of-range
// indices are ignored.
func (d *DirectWire) SetWeight(in, out int, w float64) {
	if out < 0 || out >= len(d.weights) || in < 0 || in >= len(d.in) {
		return
	}
	d.weights[out][in] = w
}

// SetBias sets the bias of output out. Out-of-range indices are ignored.
func (d *DirectWire) SetBias(out int, b float64) {
	if out < 0 || out >= len(d.biases) {
		return
	}
	d.biases[out] = b
}

// Activate computes sigmoid(bias + w·inputs) for every output.
func (d *DirectWire) Activate(inputs, outputs []float64) {
	n := copy(d.in, inputs)
	clear(d.in[n:])

	for j := range outputs {
		if j >= len(d.weights) {
			outputs[j] = 0
			continue
		}
		sum := d.biases[j] + floats.Dot(d.weights[j], d.in)
		outputs[j] = 1.0 / (1.0 + math.Exp(-sum))
	}
}

// Reset is a no-op: the network holds no state between calls.
func (d *DirectWire) Reset() {}

// NumInputs returns the input count.
func (d *DirectWire) NumInputs() int { return len(d.in) }

// NumOutputs returns the output count.
func (d *DirectWire) NumOutputs() int { return len(d.weights) }
