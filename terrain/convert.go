package terrain

import (
	"github.com/katalvlaran/slopepath/config"
	"github.com/katalvlaran/slopepath/grid"
)

// ConvertToMeters maps each normalized value v of hf to
// heightMin + v*(heightMax-heightMin). hf must be non-nil.
// Complexity: O(W×H).
func ConvertToMeters(hf *grid.Field, heightMin, heightMax float64) *grid.Field {
	scale := heightMax - heightMin

	return hf.Map(func(v float64) float64 {
		return heightMin + v*scale
	})
}

// ToMeters is ConvertToMeters driven by a FieldConfig.
func ToMeters(hf *grid.Field, fc config.FieldConfig) *grid.Field {
	return ConvertToMeters(hf, fc.HeightMinM, fc.HeightMaxM)
}
