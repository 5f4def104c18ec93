package render_pipeline

import (
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/material"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/thread_local"
)

// ScenePass consumes sub-batches of visible drawables during classification.
//
// OnUpdateBegin and OnUpdateEnd run on one goroutine. AddBatch is called concurrently from
// worker slots and must only touch state owned by threadIndex.
type ScenePass interface {
	// OnUpdateBegin resets per-frame state for ctx.NumThreads worker slots.
	//
	// Parameters:
	//   - ctx: the frame context
	OnUpdateBegin(ctx *FrameContext)

	// AddBatch routes one sub-batch of a drawable to this pass's stages.
	//
	// Parameters:
	//   - threadIndex: the calling worker slot
	//   - d: the drawable
	//   - sourceBatchIndex: index into d.Batches()
	//   - tech: the resolved technique
	//
	// Returns:
	//   - bool: true if the batch will receive per-light rendering
	AddBatch(threadIndex int, d drawable.Drawable, sourceBatchIndex int, tech material.Technique) bool

	// OnUpdateEnd merges per-thread output after the parallel phase.
	OnUpdateEnd()
}

// PipelineBatch is one sub-batch routed to a stage of a ScenePass.
// A lit batch has LightPass set; BasePass is nil when the light stage draws on top of an unlit base.
type PipelineBatch struct {
	Drawable         drawable.Drawable
	SourceBatchIndex int
	BasePass         *material.Pass
	LightPass        *material.Pass
}

type sceneRenderingPass struct {
	name        string
	needAmbient bool

	unlitBasePass int
	litBasePass   int
	lightPass     int

	litBatches   *thread_local.Accumulator[PipelineBatch]
	unlitBatches *thread_local.Accumulator[PipelineBatch]

	mergedLit   []PipelineBatch
	mergedUnlit []PipelineBatch
}

// SceneRenderingPass routes sub-batches into unlit-base, lit-base and per-light stages.
type SceneRenderingPass interface {
	ScenePass

	// Name returns the pass name.
	Name() string

	// NeedAmbient reports whether lit batches of this pass read the per-drawable ambient SH.
	NeedAmbient() bool

	// LitBatches returns the merged lit batches of the last frame in worker slot order.
	//
	// Returns:
	//   - []PipelineBatch: lit batches, valid until the next OnUpdateBegin
	LitBatches() []PipelineBatch

	// UnlitBatches returns the merged unlit batches of the last frame in worker slot order.
	//
	// Returns:
	//   - []PipelineBatch: unlit batches, valid until the next OnUpdateBegin
	UnlitBatches() []PipelineBatch
}

var _ SceneRenderingPass = &sceneRenderingPass{}

// NewSceneRenderingPass creates a pass using the "base", "litbase" and "light" stages unless overridden.
//
// Parameters:
//   - options: functional options to configure the pass
//
// Returns:
//   - SceneRenderingPass: the new pass
func NewSceneRenderingPass(options ...SceneRenderingPassBuilderOption) SceneRenderingPass {
	p := &sceneRenderingPass{
		name:          "scene",
		needAmbient:   true,
		unlitBasePass: material.BasePassIndex,
		litBasePass:   material.LitBasePassIndex,
		lightPass:     material.LightPassIndex,
		litBatches:    thread_local.NewAccumulator[PipelineBatch](1),
		unlitBatches:  thread_local.NewAccumulator[PipelineBatch](1),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *sceneRenderingPass) Name() string {
	return p.name
}

func (p *sceneRenderingPass) NeedAmbient() bool {
	return p.needAmbient
}

func (p *sceneRenderingPass) OnUpdateBegin(ctx *FrameContext) {
	p.litBatches.Clear(ctx.NumThreads)
	p.unlitBatches.Clear(ctx.NumThreads)
	p.mergedLit = p.mergedLit[:0]
	p.mergedUnlit = p.mergedUnlit[:0]
}

func (p *sceneRenderingPass) AddBatch(threadIndex int, d drawable.Drawable, sourceBatchIndex int, tech material.Technique) bool {
	unlitBase := tech.Pass(p.unlitBasePass)
	litBase := tech.Pass(p.litBasePass)
	light := tech.Pass(p.lightPass)

	switch {
	case light != nil && litBase != nil:
		p.litBatches.PushBack(threadIndex, PipelineBatch{
			Drawable:         d,
			SourceBatchIndex: sourceBatchIndex,
			BasePass:         litBase,
			LightPass:        light,
		})
		return true
	case light != nil && unlitBase != nil:
		p.unlitBatches.PushBack(threadIndex, PipelineBatch{
			Drawable:         d,
			SourceBatchIndex: sourceBatchIndex,
			BasePass:         unlitBase,
		})
		p.litBatches.PushBack(threadIndex, PipelineBatch{
			Drawable:         d,
			SourceBatchIndex: sourceBatchIndex,
			LightPass:        light,
		})
		return true
	case unlitBase != nil:
		p.unlitBatches.PushBack(threadIndex, PipelineBatch{
			Drawable:         d,
			SourceBatchIndex: sourceBatchIndex,
			BasePass:         unlitBase,
		})
		return false
	default:
		return false
	}
}

func (p *sceneRenderingPass) OnUpdateEnd() {
	p.mergedLit = p.litBatches.AppendTo(p.mergedLit[:0])
	p.mergedUnlit = p.unlitBatches.AppendTo(p.mergedUnlit[:0])
}

func (p *sceneRenderingPass) LitBatches() []PipelineBatch {
	return p.mergedLit
}

func (p *sceneRenderingPass) UnlitBatches() []PipelineBatch {
	return p.mergedUnlit
}
