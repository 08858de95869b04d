package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/slopepath/grid"
)

// Sentinel errors for configuration handling.
var (
	// ErrInvalidConfig indicates a configuration value outside its admissible range.
	ErrInvalidConfig = errors.New("config: invalid value")
	// ErrConfigFile indicates a config path that cannot be accepted.
	ErrConfigFile = errors.New("config: unusable config file")
)

// FieldConfig describes the terrain raster.
//
// BlurSize is only used by terrain generation; the planner never reads it.
type FieldConfig struct {
	ImageSize  int     `json:"image_size" toml:"image_size"`
	BlurSize   float64 `json:"blur_size" toml:"blur_size"`
	HeightMinM float64 `json:"height_min_m" toml:"height_min_m"`
	HeightMaxM float64 `json:"height_max_m" toml:"height_max_m"`
	PixelSizeM float64 `json:"pixel_size_m" toml:"pixel_size_m"`
}

// RobotConfig describes the vehicle and the planner weights.
//
// MaxSlopeDeg <= 0 is a legal, degenerate policy: the cost model becomes flat.
// EndTolerancePx is the goal radius in cells used by the bidirectional search;
// 0 means the exact destination only.
type RobotConfig struct {
	MaxSlopeDeg             float64           `json:"max_slope_deg" toml:"max_slope_deg"`
	Start                   grid.Cell         `json:"start" toml:"start"`
	Movement                grid.Connectivity `json:"movement_mode" toml:"movement_mode"`
	SlopeCostWeight         float64           `json:"slope_cost_weight" toml:"slope_cost_weight"`
	RemainingDistanceWeight float64           `json:"remaining_distance_weight" toml:"remaining_distance_weight"`
	TraceSampleStride       int               `json:"trace_sample_stride" toml:"trace_sample_stride"`
	EndTolerancePx          int               `json:"end_tolerance_px" toml:"end_tolerance_px"`
}

// DefaultField returns the terrain defaults: a 512×512 raster blurred with
// sigma 3, heights 0–3 m and 10 cm cells.
func DefaultField() FieldConfig {
	return FieldConfig{
		ImageSize:  512,
		BlurSize:   3.0,
		HeightMinM: 0.0,
		HeightMaxM: 3.0,
		PixelSizeM: 0.1,
	}
}

// DefaultRobot returns the vehicle defaults: 30° slope limit from (0,0),
// 8-connected, slope weight 100, heuristic weight 5, every 50th step traced,
// exact goal.
func DefaultRobot() RobotConfig {
	return RobotConfig{
		MaxSlopeDeg:             30.0,
		Start:                   grid.Cell{},
		Movement:                grid.Conn8,
		SlopeCostWeight:         100.0,
		RemainingDistanceWeight: 5.0,
		TraceSampleStride:       50,
		EndTolerancePx:          0,
	}
}

// Validate checks that every FieldConfig value is usable.
func (c FieldConfig) Validate() error {
	if c.ImageSize <= 0 {
		return invalid("image_size", c.ImageSize)
	}
	if c.BlurSize < 0 || math.IsNaN(c.BlurSize) {
		return invalid("blur_size", c.BlurSize)
	}
	if !finite(c.HeightMinM) || !finite(c.HeightMaxM) || c.HeightMaxM < c.HeightMinM {
		return fmt.Errorf("%w: height range [%g, %g]", ErrInvalidConfig, c.HeightMinM, c.HeightMaxM)
	}
	if !(c.PixelSizeM > 0) || math.IsInf(c.PixelSizeM, 0) {
		return invalid("pixel_size_m", c.PixelSizeM)
	}

	return nil
}

// Validate checks that every RobotConfig value is usable.
// A non-positive MaxSlopeDeg is accepted.
func (c RobotConfig) Validate() error {
	if math.IsNaN(c.MaxSlopeDeg) {
		return invalid("max_slope_deg", c.MaxSlopeDeg)
	}
	if c.Start.Row < 0 || c.Start.Col < 0 {
		return invalid("start", c.Start)
	}
	if !c.Movement.Valid() {
		return invalid("movement_mode", int(c.Movement))
	}
	if c.SlopeCostWeight < 0 || !finite(c.SlopeCostWeight) {
		return invalid("slope_cost_weight", c.SlopeCostWeight)
	}
	if c.RemainingDistanceWeight < 0 || !finite(c.RemainingDistanceWeight) {
		return invalid("remaining_distance_weight", c.RemainingDistanceWeight)
	}
	if c.TraceSampleStride < 1 {
		return invalid("trace_sample_stride", c.TraceSampleStride)
	}
	if c.EndTolerancePx < 0 {
		return invalid("end_tolerance_px", c.EndTolerancePx)
	}

	return nil
}

func invalid(name string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, name, v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
