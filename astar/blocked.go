package astar

import "github.com/katalvlaran/slopepath/grid"

// blockedSet records rejected neighbor coordinates once each, keeping
// first-seen order. Off-grid coordinates are stored as-is.
type blockedSet struct {
	seen  map[grid.Cell]struct{}
	order []grid.Cell
}

func newBlockedSet() *blockedSet {
	return &blockedSet{seen: make(map[grid.Cell]struct{})}
}

func (b *blockedSet) add(c grid.Cell) {
	if _, ok := b.seen[c]; ok {
		return
	}
	b.seen[c] = struct{}{}
	b.order = append(b.order, c)
}

// cells returns a copy in discovery order; never nil.
func (b *blockedSet) cells() []grid.Cell {
	out := make([]grid.Cell, len(b.order))
	copy(out, b.order)
	return out
}
