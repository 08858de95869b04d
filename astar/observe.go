package astar

import (
	"slices"

	"github.com/katalvlaran/slopepath/grid"
)

// SearchStep is an immutable snapshot of the search after one expansion.
//
// Index   – expansion counter, starting at 0; the goal snapshot repeats the
//           index of the expansion that would have followed.
// Current – the cell just finalized.
// Visited – every finalized cell, sorted row-major.
// Open    – cells waiting in the heap, minus visited ones, sorted row-major.
// Blocked – rejected neighbors seen so far, sorted row-major.
// Goal    – true only for the terminating snapshot.
type SearchStep struct {
	Index   int
	Current grid.Cell
	Visited []grid.Cell
	Open    []grid.Cell
	Blocked []grid.Cell
	Goal    bool
}

// Observer receives search snapshots synchronously.
type Observer interface {
	OnStep(step SearchStep)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step SearchStep)

// OnStep calls f(step).
func (f ObserverFunc) OnStep(step SearchStep) { f(step) }

// NewStep builds a normalized snapshot from raw working sets: duplicates are
// dropped, every list is sorted by (row, col), and open cells that are also
// visited are removed. Input slices are not modified.
func NewStep(index int, current grid.Cell, visited, open, blocked []grid.Cell, goal bool) SearchStep {
	v := sortedUnique(visited)
	o := make([]grid.Cell, 0, len(open))
	for _, c := range sortedUnique(open) {
		if _, found := slices.BinarySearchFunc(v, c, grid.Cell.Compare); !found {
			o = append(o, c)
		}
	}

	return SearchStep{
		Index:   index,
		Current: current,
		Visited: v,
		Open:    o,
		Blocked: sortedUnique(blocked),
		Goal:    goal,
	}
}

func sortedUnique(cells []grid.Cell) []grid.Cell {
	out := slices.Clone(cells)
	if out == nil {
		out = []grid.Cell{}
	}
	slices.SortFunc(out, grid.Cell.Compare)
	return slices.Compact(out)
}

// snapshotter gathers raw working sets for NewStep. It exists only when an
// observer is registered.
type snapshotter struct {
	obs     Observer
	hf      *grid.Field
	visited []grid.Cell
}

func (s *snapshotter) finalize(c grid.Cell) {
	s.visited = append(s.visited, c)
}

func (s *snapshotter) emit(index int, current grid.Cell, blocked *blockedSet, goal bool, fronts ...*frontier) {
	var open []grid.Cell
	for _, f := range fronts {
		for _, item := range f.pq {
			open = append(open, s.hf.CellAt(item.idx))
		}
	}
	s.obs.OnStep(NewStep(index, current, s.visited, open, blocked.order, goal))
}
