package neat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInnovationTrackerSameGeneration(t *testing.T) {
	tr := NewInnovationTracker(5)

	a := tr.GetOrCreate(0, 3)
	assert.Equal(t, 5, a)
	assert.Equal(t, a, tr.GetOrCreate(0, 3))

	b := tr.GetOrCreate(3, 0)
	assert.Equal(t, 6, b, "direction matters")
	assert.Equal(t, 7, tr.Next())
}

func TestInnovationTrackerNewGeneration(t *testing.T) {
	tr := NewInnovationTracker(1)
	first := tr.GetOrCreate(1, 2)

	tr.NewGeneration()
	second := tr.GetOrCreate(1, 2)

	assert.Greater(t, second, first)
	assert.Equal(t, second, tr.GetOrCreate(1, 2))
}
