package neat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReporterWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	r := NewCSVReporter(&buf)

	require.NoError(t, r.ReportGeneration(GenerationStats{Generation: 0, BestFitness: 1, PopulationSize: 10, SpeciesCount: 1}))
	require.NoError(t, r.ReportGeneration(GenerationStats{Generation: 1, BestFitness: 2, PopulationSize: 10, SpeciesCount: 3}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "generation,best_fitness,mean_fitness,stdev_fitness,species_count,population_size", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,1,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "1,2,"), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], ",3,10"), lines[2])
}
