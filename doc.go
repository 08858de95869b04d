// Package slopepath plans routes for a ground robot across a height-field,
// refusing moves that are steeper than the robot can climb and preferring
// flatter ground where it can.
//
// 🚀 What is slopepath?
//
//	A small planning toolkit built around a weighted A* over a raster:
//		• Terrain model: normalized height → metres, gradient-based cost grid
//		• Traversability: per-move slope angle against a max slope
//		• Search: unidirectional A*, bidirectional A* with a goal radius
//		• Observability: per-expansion snapshots, sampled trace recording
//		• Artifacts: path PNG, search GIF, relief map, elevation profile, cost heatmap
//
// ✨ Why slopepath?
//
//   - Deterministic: identical inputs give identical paths and blocked order
//   - Honest failures: "no path" carries the blocked cells gathered so far
//   - Observable: plug any Observer in, pay nothing when none is set
//
// Packages:
//
//	grid/           Cell, Offset, Connectivity (Conn4/Conn8), immutable Field
//	config/         FieldConfig, RobotConfig, defaults, JSON/TOML loading
//	terrain/        height conversion, cost grid, slope rule, slope regions, binary height-maps
//	astar/          Search, Bidirectional, SearchStep, Observer
//	trace/          Recorder: stride-sampled snapshots with blocked dedup
//	noise/          seeded synthetic terrain
//	render/         PNG, GIF, gg relief, gonum/plot profile, go-echarts heatmap
//	cmd/slopepath/  end-to-end CLI with Prometheus textfile metrics
//
// Quick ASCII example (10 cm cells, 30° limit, a 1 m spike at the centre):
//
//	S . . . .
//	. * * . .
//	. . ▲ * .
//	. . . * .
//	. . . . G
//
// The spike is blocked from every side; the route bends around it.
//
//	go run ./cmd/slopepath -trace -profile
package slopepath
