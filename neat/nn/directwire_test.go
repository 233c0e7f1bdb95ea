package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectWire(t *testing.T) {
	d := NewDirectWire(2, 1)
	assert.Equal(t, 2, d.NumInputs())
	assert.Equal(t, 1, d.NumOutputs())

	d.SetWeight(0, 0, 2)
	d.SetWeight(1, 0, -1)
	d.SetBias(0, 0.5)

	out := []float64{-1, -1}
	d.Activate([]float64{1, 3}, out)
	want := 1.0 / (1.0 + math.Exp(-(0.5 + 2 - 3)))
	assert.InDelta(t, want, out[0], 1e-12)
	assert.Equal(t, 0.0, out[1])

	// Short input reads the missing value as 0.
	d.Activate([]float64{1}, out[:1])
	assert.InDelta(t, 1.0/(1.0+math.Exp(-2.5)), out[0], 1e-12)

	d.Reset()
}

func TestDirectWireIgnoresOutOfRange(t *testing.T) {
	d := NewDirectWire(1, 1)
	assert.NotPanics(t, func() {
		d.SetWeight(5, 0, 1)
		d.SetWeight(0, 5, 1)
		d.SetWeight(-1, 0, 1)
		d.SetBias(3, 1)
		d.SetBias(-1, 1)
	})

	out := make([]float64, 1)
	d.Activate([]float64{10}, out)
	assert.InDelta(t, 0.5, out[0], 1e-12)
}
