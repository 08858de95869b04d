// Package astar plans slope-constrained routes across a height-field with a
// weighted A* search, in a unidirectional and a bidirectional (goal-tolerance)
// flavor, and can stream a snapshot of the search state to an observer after
// every expansion.
//
// Overview:
//
//   - Search runs a classic weighted A* from start to destination.
//     f = g + w·h, where h is the Euclidean distance in cells to the
//     destination and w is the heuristic weight (w = 1 keeps the heuristic
//     admissible because step costs are never below the geometric step length).
//   - Bidirectional runs two searches that alternate one expansion each: a
//     forward search from the start, and a backward search seeded with zero
//     cost from every cell within the goal tolerance radius of the destination.
//     The backward heuristic is the distance to the start.
//   - Step cost from a cell to an admissible neighbor is the geometric step
//     (1 orthogonal, √2 diagonal) times the cost multiplier of the cell being
//     entered (1 when no cost grid is given).
//   - A move is admissible when terrain.Traversable accepts it. Off-grid and
//     slope-rejected neighbors are collected, deduplicated and in discovery
//     order, into Result.Blocked.
//
// Ordering and determinism:
//
//   - The open set is a binary min-heap keyed by f, ties broken by the
//     row-major cell index, i.e. lexicographic (row, col). Neighbors are
//     visited in grid.Connectivity.Offsets order. Identical inputs therefore
//     produce identical paths and identical blocked-cell order.
//   - f values are wrapped so that NaN sorts as +Inf; a NaN or negative step
//     cost is treated as +Inf and never relaxes a neighbor.
//   - A cell is finalized the first time it is popped. Improved g-scores push
//     a new heap entry (lazy decrease-key); stale entries are skipped on pop.
//
// Termination:
//
//   - Search succeeds when the destination is popped; the path is rebuilt by
//     walking parent links back to the start.
//   - Bidirectional succeeds when a side pops a cell that is (a) in the goal
//     region (forward), (b) the start (backward) or (c) already finalized by the
//     other side. The two parent chains are joined at that meeting cell. This is
//     the first-intersection rule: it does not wait for the optimal stopping
//     bound, so the joined path can cost more than the optimum.
//
// Errors:
//
//   - ErrNoPath: the open set was exhausted. The *Result still carries the
//     blocked cells gathered so far.
//   - ErrOutOfBounds: start or destination lies outside the grid. The error
//     also matches ErrNoPath, Blocked is empty and no observer call happens.
//   - ErrNilField, ErrShapeMismatch, ErrBadConnectivity: invalid inputs,
//     reported before any search work.
//
// Observability:
//
//   - WithObserver registers an Observer. After every finalized cell (every
//     half-step for Bidirectional) the engine builds a SearchStep through
//     NewStep and hands it to Observer.OnStep synchronously; the search resumes
//     only after OnStep returns. Without an observer no snapshot is built.
//
// Complexity:
//
//   - Time:  O(N·d·log(N·d)) for N cells and d = 4 or 8 neighbors.
//   - Space: O(N) for g-scores, parents and finalized flags, plus O(N·d) heap
//     entries in the worst case under lazy decrease-key.
//   - With an observer, each snapshot costs O(V log V) for V finalized cells.
//
// Thread safety:
//
//   - All mutable state belongs to one call. Height-field and cost grid are
//     only read, so they may be reused across calls.
package astar
