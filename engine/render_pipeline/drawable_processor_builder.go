package render_pipeline

import "github.com/Carmen-Shannon/oxy-pipeline/engine/material"

// DrawableProcessorBuilderOption is a functional option for configuring a DrawableProcessor.
type DrawableProcessorBuilderOption func(*drawableProcessor)

// WithDefaultMaterial sets the material used for sub-batches without one.
// Defaults to material.DefaultMaterial().
//
// Parameters:
//   - m: the fallback material
//
// Returns:
//   - DrawableProcessorBuilderOption: option function to apply
func WithDefaultMaterial(m material.Material) DrawableProcessorBuilderOption {
	return func(p *drawableProcessor) {
		p.defaultMaterial = m
	}
}

// WithMaxPixelLights caps the number of lights accumulated per forward-lit drawable. Default is 4.
//
// Parameters:
//   - n: the light cap (negative values are treated as 0)
//
// Returns:
//   - DrawableProcessorBuilderOption: option function to apply
func WithMaxPixelLights(n int) DrawableProcessorBuilderOption {
	return func(p *drawableProcessor) {
		p.maxPixelLights = max(n, 0)
	}
}

// WithPasses registers passes in order.
//
// Parameters:
//   - passes: the passes every resolved sub-batch is forwarded to
//
// Returns:
//   - DrawableProcessorBuilderOption: option function to apply
func WithPasses(passes ...ScenePass) DrawableProcessorBuilderOption {
	return func(p *drawableProcessor) {
		for _, pass := range passes {
			if pass != nil {
				p.passes = append(p.passes, pass)
			}
		}
	}
}
