package render_pipeline

import "github.com/Carmen-Shannon/oxy-pipeline/engine/material"

// Settings are the user-facing knobs of a RenderPipeline.
type Settings struct {
	// MaterialQuality is the technique tier requested for every drawable.
	MaterialQuality material.MaterialQuality
	// MaxPixelLights caps the per-drawable forward light list.
	MaxPixelLights int
	// FrustumCulling selects frustum-queried candidates instead of every registered drawable.
	FrustumCulling bool
	// DefaultMaterial is used for batches without a material. Nil means material.DefaultMaterial().
	DefaultMaterial material.Material
}

// DefaultSettings returns high quality, four pixel lights and frustum culling enabled.
//
// Returns:
//   - Settings: the default settings
func DefaultSettings() Settings {
	return Settings{
		MaterialQuality: material.QualityHigh,
		MaxPixelLights:  4,
		FrustumCulling:  true,
	}
}
