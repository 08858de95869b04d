// Package config holds the explicit configuration structs passed into every
// slopepath entry point. There is no process-wide state: callers obtain
// defaults from DefaultField / DefaultRobot, optionally overlay a JSON or TOML
// file with Load, and pass the result by value.
//
// FieldConfig describes the synthetic terrain raster (size, blur, height range,
// metres per cell). RobotConfig describes the vehicle and the planner knobs
// (maximum slope, start cell, movement mode, cost and heuristic weights, trace
// stride, goal tolerance).
//
// Errors:
//
//   - ErrInvalidConfig: a field is outside its admissible range (wrapped with
//     the offending field name).
//   - ErrConfigFile: the file path has an unsupported extension or is too large.
package config
