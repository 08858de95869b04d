// Package trace records search snapshots for later playback.
//
// A Recorder is an astar.Observer. It keeps every Stride-th snapshot plus the
// terminating goal snapshot, and strips from each retained snapshot the
// blocked cells already reported by an earlier retained one, so a long trace
// does not repeat the same blocked coordinates thousands of times.
//
// A Recorder is not safe for concurrent use; the search engine calls it
// synchronously from a single goroutine.
package trace
