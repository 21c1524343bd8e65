package turnsearch

// stateItem is a state and the cost at which it was pushed.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
// Improved costs are pushed as new entries; outdated ones stay in the heap
// and are skipped on pop once their state is finalized.
type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// pathPQ is a min-heap of Path records ordered by Cost ascending.
type pathPQ []Path

func (pq pathPQ) Len() int            { return len(pq) }
func (pq pathPQ) Less(i, j int) bool  { return pq[i].Cost < pq[j].Cost }
func (pq pathPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(Path)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
