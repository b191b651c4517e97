package search

// item is one priority-queue entry: a pointer to the board node it scores,
// so updating node.key in place and re-pushing (lazy-decrease-key) is
// enough to honor an improved path without removing the stale entry.
type item struct {
	n   *node
	key float64
}

// nodePQ is a min-heap of *item ordered by key ascending, in the
// lazy-decrease-key style: a popped item is checked against the node's
// current best key and discarded if it no longer matches (the node was
// improved after this entry was pushed).
type nodePQ []*item

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].key < pq[j].key }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
