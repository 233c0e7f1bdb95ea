package neat

// connectionKey identifies a structural mutation by its (source, target) pair.
type connectionKey struct {
	Source int
	Target int
}

// InnovationTracker hands out historical markings for new connections.
//
// Within one generation the same (source, target) pair always maps to the
// same innovation number, so genomes that independently discover the same
// structural mutation stay aligned. The counter itself never goes back.
type InnovationTracker struct {
	next    int
	thisGen map[connectionKey]int
}

// NewInnovationTracker creates a tracker whose first allocation is next.
func NewInnovationTracker(next int) *InnovationTracker {
	return &InnovationTracker{
		next:    next,
		thisGen: make(map[connectionKey]int),
	}
}

// GetOrCreate returns the innovation number for source->target, allocating
// a fresh one if the pair has not been seen this generation.
func (t *InnovationTracker) GetOrCreate(source, target int) int {
	key := connectionKey{Source: source, Target: target}
	if innov, ok := t.thisGen[key]; ok {
		return innov
	}
	innov := t.next
	t.next++
	t.thisGen[key] = innov
	return innov
}

// NewGeneration forgets this generation's pairs. The counter is kept.
func (t *InnovationTracker) NewGeneration() {
	clear(t.thisGen)
}

// Next returns the innovation number the next allocation will use.
func (t *InnovationTracker) Next() int {
	return t.next
}
