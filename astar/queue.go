package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/slopepath/grid"
)

// fcost is an f-score with a total order: NaN compares as +Inf.
type fcost float64

func newFCost(v float64) fcost {
	if math.IsNaN(v) {
		return fcost(math.Inf(1))
	}
	return fcost(v)
}

// queueItem is one heap entry: a flat cell index and its f-score at push time.
type queueItem struct {
	f   fcost
	idx int
}

// nodePQ is a min-heap of queueItem ordered by f, then by row-major index.
// Implements heap.Interface.
type nodePQ []queueItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// frontier is the per-direction search state: g-scores, parent links,
// finalized flags and the open heap. anchor is the heuristic target.
type frontier struct {
	anchor grid.Cell
	g      []float64
	parent []int
	closed []bool
	pq     nodePQ
}

func newFrontier(n int, anchor grid.Cell) *frontier {
	s := &frontier{
		anchor: anchor,
		g:      make([]float64, n),
		parent: make([]int, n),
		closed: make([]bool, n),
		pq:     make(nodePQ, 0, 64),
	}
	for i := range s.g {
		s.g[i] = math.Inf(1)
		s.parent[i] = -1
	}
	heap.Init(&s.pq)

	return s
}

// seed marks idx as a root with g = 0 and pushes it with priority f.
func (s *frontier) seed(idx int, f float64) {
	s.g[idx] = 0
	s.parent[idx] = idx
	s.push(idx, f)
}

// push adds idx with priority f; older entries for idx become stale.
func (s *frontier) push(idx int, f float64) {
	heap.Push(&s.pq, queueItem{f: newFCost(f), idx: idx})
}

// pop returns the next non-finalized index, discarding stale entries.
func (s *frontier) pop() (int, bool) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(queueItem)
		if !s.closed[item.idx] {
			return item.idx, true
		}
	}
	return -1, false
}

// chain returns idx followed by its ancestors up to the root.
func (s *frontier) chain(idx int) []int {
	out := []int{idx}
	for s.parent[idx] != idx {
		idx = s.parent[idx]
		out = append(out, idx)
	}
	return out
}
