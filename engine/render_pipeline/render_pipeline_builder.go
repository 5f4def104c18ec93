package render_pipeline

import (
	"github.com/Carmen-Shannon/oxy-pipeline/engine/profiler"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/work_queue"
)

// RenderPipelineBuilderOption is a functional option for configuring a RenderPipeline.
type RenderPipelineBuilderOption func(*renderPipeline)

// WithWorkQueue shares an existing work queue. The pipeline does not stop a shared queue.
// Without this option the pipeline creates and owns a default queue.
//
// Parameters:
//   - wq: the work queue
//
// Returns:
//   - RenderPipelineBuilderOption: option function to apply
func WithWorkQueue(wq work_queue.WorkQueue) RenderPipelineBuilderOption {
	return func(rp *renderPipeline) {
		rp.wq = wq
		rp.ownsQueue = false
	}
}

// WithSettings replaces DefaultSettings.
//
// Parameters:
//   - s: the settings
//
// Returns:
//   - RenderPipelineBuilderOption: option function to apply
func WithSettings(s Settings) RenderPipelineBuilderOption {
	return func(rp *renderPipeline) {
		rp.settings = s
	}
}

// WithProfiler reports every frame's processor stats to p. Tick stays with the caller.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - RenderPipelineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) RenderPipelineBuilderOption {
	return func(rp *renderPipeline) {
		rp.profiler = p
	}
}

// WithScenePasses replaces the default SceneRenderingPass with the given passes.
//
// Parameters:
//   - passes: the passes in registration order
//
// Returns:
//   - RenderPipelineBuilderOption: option function to apply
func WithScenePasses(passes ...ScenePass) RenderPipelineBuilderOption {
	return func(rp *renderPipeline) {
		for _, pass := range passes {
			if pass != nil {
				rp.passes = append(rp.passes, pass)
			}
		}
	}
}
