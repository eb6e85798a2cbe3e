package gps

// SearchState is one node of the search tree: the dependency names still
// needing a chosen version, the constraints accumulated so far, and the
// UnitVersions chosen so far. SearchStates are immutable; propagate.go and
// solver.go only ever produce new ones.
type SearchState struct {
	dependencies DependenciesList
	constraints  ConstraintsList
	choices      []*UnitVersion
}

// IsTerminal reports whether every dependency has a chosen version.
func (s SearchState) IsTerminal() bool {
	return s.dependencies.IsEmpty()
}

// Choices returns the UnitVersions chosen so far, in the order they were
// added to the state.
func (s SearchState) Choices() []*UnitVersion {
	return s.choices
}

// pqItem is one entry in the search frontier's priority queue.
type pqItem struct {
	state SearchState

	// estimate is the raw, non-combined output of Options.EstimateCostFunction.
	// When a state whose estimate is +Inf reaches the front of the queue,
	// Resolve stops searching altogether.
	estimate float64

	// priority is Options.CombineCostFunction(cost, estimate); the queue
	// orders on this value.
	priority float64

	// numChoices breaks priority ties in favor of the more-progressed state.
	numChoices int

	index int
}

// priorityQueue implements container/heap.Interface over pqItems, ordering
// by ascending priority and, on ties, by descending numChoices.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].numChoices > pq[j].numChoices
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
