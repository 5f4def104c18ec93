package render_pipeline

import (
	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/material"
)

// SceneRenderingPassBuilderOption is a functional option for configuring a SceneRenderingPass.
type SceneRenderingPassBuilderOption func(*sceneRenderingPass)

// WithPassName sets the pass name. An empty name keeps the default "scene".
//
// Parameters:
//   - name: the pass name
//
// Returns:
//   - SceneRenderingPassBuilderOption: option function to apply
func WithPassName(name string) SceneRenderingPassBuilderOption {
	return func(p *sceneRenderingPass) {
		p.name = common.Coalesce(name, p.name)
	}
}

// WithNeedAmbient sets whether lit batches of the pass need ambient lighting. Defaults to true.
//
// Parameters:
//   - needAmbient: false to skip probe and zone ambient sampling for this pass
//
// Returns:
//   - SceneRenderingPassBuilderOption: option function to apply
func WithNeedAmbient(needAmbient bool) SceneRenderingPassBuilderOption {
	return func(p *sceneRenderingPass) {
		p.needAmbient = needAmbient
	}
}

// WithUnlitBasePass sets the technique stage used for unlit geometry.
//
// Parameters:
//   - name: the stage name, e.g. "base"
//
// Returns:
//   - SceneRenderingPassBuilderOption: option function to apply
func WithUnlitBasePass(name string) SceneRenderingPassBuilderOption {
	return func(p *sceneRenderingPass) {
		p.unlitBasePass = material.PassIndex(name)
	}
}

// WithLitBasePass sets the technique stage that draws the base color with the first light.
//
// Parameters:
//   - name: the stage name, e.g. "litbase"
//
// Returns:
//   - SceneRenderingPassBuilderOption: option function to apply
func WithLitBasePass(name string) SceneRenderingPassBuilderOption {
	return func(p *sceneRenderingPass) {
		p.litBasePass = material.PassIndex(name)
	}
}

// WithLightPass sets the additive per-light technique stage.
//
// Parameters:
//   - name: the stage name, e.g. "light"
//
// Returns:
//   - SceneRenderingPassBuilderOption: option function to apply
func WithLightPass(name string) SceneRenderingPassBuilderOption {
	return func(p *sceneRenderingPass) {
		p.lightPass = material.PassIndex(name)
	}
}
