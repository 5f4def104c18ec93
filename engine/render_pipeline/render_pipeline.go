package render_pipeline

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/profiler"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/scene"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/work_queue"
)

type renderPipeline struct {
	mu *sync.Mutex

	scene     scene.Scene
	wq        work_queue.WorkQueue
	ownsQueue bool
	processor DrawableProcessor
	passes    []ScenePass
	settings  Settings
	profiler  *profiler.Profiler

	frameNumber uint64
}

// RenderPipeline drives one scene's DrawableProcessor once per frame.
type RenderPipeline interface {
	// Update runs one frame: advances the frame number, refreshes the camera, captures the
	// frame context, classifies the candidate drawables and accumulates per-drawable lights.
	// The scene's drawable set is frozen for the duration of the call.
	//
	// Parameters:
	//   - timeStep: seconds since the previous frame
	Update(timeStep float32)

	// FrameNumber returns the number of the last processed frame, 0 before the first Update.
	FrameNumber() uint64

	// Scene returns the scene this pipeline renders.
	Scene() scene.Scene

	// Processor returns the pipeline's DrawableProcessor. Its results are valid between Updates.
	Processor() DrawableProcessor

	// SceneRenderingPasses returns the registered passes that are SceneRenderingPass values.
	SceneRenderingPasses() []SceneRenderingPass

	// AddPass registers an additional pass.
	AddPass(pass ScenePass)

	// Settings returns a copy of the current settings.
	Settings() Settings

	// SetSettings replaces the settings from the next Update on.
	SetSettings(s Settings)

	// Stop releases the work queue if the pipeline created it.
	Stop()
}

var _ RenderPipeline = &renderPipeline{}

// NewRenderPipeline creates a RenderPipeline for s with DefaultSettings and a single
// SceneRenderingPass unless overridden.
//
// Parameters:
//   - s: the scene to render; must not be nil
//   - options: functional options to configure the pipeline
//
// Returns:
//   - RenderPipeline: the new pipeline
func NewRenderPipeline(s scene.Scene, options ...RenderPipelineBuilderOption) RenderPipeline {
	if s == nil {
		panic("render_pipeline: NewRenderPipeline requires a non-nil Scene")
	}
	rp := &renderPipeline{
		mu:       &sync.Mutex{},
		scene:    s,
		settings: DefaultSettings(),
	}
	for _, option := range options {
		option(rp)
	}
	if rp.wq == nil {
		rp.wq = work_queue.NewWorkQueue()
		rp.ownsQueue = true
	}
	if len(rp.passes) == 0 {
		rp.passes = []ScenePass{NewSceneRenderingPass()}
	}
	rp.processor = NewDrawableProcessor(rp.wq,
		WithPasses(rp.passes...),
		WithMaxPixelLights(rp.settings.MaxPixelLights),
		WithDefaultMaterial(rp.settings.DefaultMaterial),
	)
	return rp
}

func (rp *renderPipeline) Update(timeStep float32) {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	rp.scene.Freeze(func() {
		rp.frameNumber++
		cam := rp.scene.Camera()
		cam.Update()

		index := rp.scene.SpatialIndex()
		ctx := &FrameContext{
			FrameInfo: drawable.FrameInfo{
				FrameNumber: rp.frameNumber,
				TimeStep:    timeStep,
				Camera:      cam,
			},
			Camera:          cam,
			Scene:           rp.scene,
			SpatialIndex:    index,
			NumDrawables:    index.NumDrawables(),
			NumThreads:      rp.wq.NumThreads(),
			MaterialQuality: rp.settings.MaterialQuality,
		}
		if gi := rp.scene.GlobalIllumination(); gi != nil {
			ctx.GI = gi
		}

		rp.processor.SetMaxPixelLights(rp.settings.MaxPixelLights)
		rp.processor.OnUpdateBegin(ctx)

		var candidates []drawable.Drawable
		if rp.settings.FrustumCulling {
			candidates = index.QueryDrawables(cam.Frustum(), drawable.DrawableAny, cam.ViewMask())
		} else {
			candidates = index.AllDrawables()
		}
		rp.processor.ProcessDrawables(candidates)
		rp.processor.ProcessLights()
	})

	if rp.profiler != nil {
		stats := rp.processor.Stats()
		rp.profiler.RecordFrame(profiler.FrameStats{
			DrawablesProcessed: stats.Processed,
			DistanceCulled:     stats.DistanceCulled,
			VisibleGeometries:  stats.VisibleGeometries,
			VisibleLights:      stats.VisibleLights,
			ZoneQueries:        stats.ZoneQueries,
		})
	}
}

func (rp *renderPipeline) FrameNumber() uint64 {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return rp.frameNumber
}

func (rp *renderPipeline) Scene() scene.Scene {
	return rp.scene
}

func (rp *renderPipeline) Processor() DrawableProcessor {
	return rp.processor
}

func (rp *renderPipeline) SceneRenderingPasses() []SceneRenderingPass {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	var out []SceneRenderingPass
	for _, pass := range rp.processor.Passes() {
		if srp, ok := pass.(SceneRenderingPass); ok {
			out = append(out, srp)
		}
	}
	return out
}

func (rp *renderPipeline) AddPass(pass ScenePass) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.processor.AddPass(pass)
}

func (rp *renderPipeline) Settings() Settings {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return rp.settings
}

func (rp *renderPipeline) SetSettings(s Settings) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.settings = s
}

func (rp *renderPipeline) Stop() {
	if rp.ownsQueue {
		rp.wq.Stop()
	}
}
