package neat_test

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/neat-boids/neat"
	"github.com/baldhumanity/neat-boids/neat/nn"
)

// Two signal inputs plus a constant bias input.
var xorCases = []struct {
	in   []float64
	want float64
}{
	{[]float64{0, 0, 1}, 0},
	{[]float64{0, 1, 1}, 1},
	{[]float64{1, 0, 1}, 1},
	{[]float64{1, 1, 1}, 0},
}

func xorOutputs(g neat.Genome) []float64 {
	net := nn.New(g)
	out := make([]float64, 1)
	results := make([]float64, len(xorCases))
	for i, c := range xorCases {
		net.Reset()
		net.Activate(c.in, out)
		results[i] = out[0]
	}
	return results
}

func xorFitness(_ int, g neat.Genome) float64 {
	sse := 0.0
	for i, got := range xorOutputs(g) {
		d := got - xorCases[i].want
		sse += d * d
	}
	return 4 - sse
}

// evolveXOR runs up to maxGens generations and returns the best genome and fitness seen.
func evolveXOR(t *testing.T, seed int64, maxGens int) (neat.Genome, float64) {
	t.Helper()
	next := 0
	cfg := neat.DefaultConfig()
	cfg.Neat.PopulationSize = 150
	cfg.Mutation.WeightSigma = 0.5

	pop, err := neat.NewPopulation(neat.Minimal(3, 1, &next), cfg, rand.New(rand.NewSource(seed)),
		neat.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	var best neat.Genome
	bestFitness := math.Inf(-1)
	for gen := 0; gen < maxGens; gen++ {
		pop.Evaluate(xorFitness)
		if f := pop.BestFitness(); f > bestFitness {
			best, bestFitness = pop.BestGenome(), f
		}
		if bestFitness > 3.9 {
			break
		}
		pop.AdvanceGeneration()
	}
	return best, bestFitness
}

func TestEvolveXOR(t *testing.T) {
	if testing.Short() {
		t.Skip("evolution run skipped in short mode")
	}

	for seed := int64(1); seed <= 5; seed++ {
		best, fitness := evolveXOR(t, seed, 200)
		if fitness <= 3.9 {
			t.Logf("seed %d stopped at fitness %.4f", seed, fitness)
			continue
		}

		for i, got := range xorOutputs(best) {
			assert.InDelta(t, xorCases[i].want, got, 0.3, "case %v", xorCases[i].in)
		}
		assert.InDelta(t, fitness, xorFitness(0, best), 1e-12)
		return
	}
	t.Fatal("no seed solved XOR within 200 generations")
}
