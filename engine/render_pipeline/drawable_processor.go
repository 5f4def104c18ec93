package render_pipeline

import (
	"log"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/camera"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/light"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/material"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/thread_local"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/work_queue"
)

// ProcessorStats summarizes the last processed frame.
type ProcessorStats struct {
	Processed         int
	DistanceCulled    int
	ZoneQueries       int
	SkippedBatches    int
	DoubleUpdates     int
	OutOfRange        int
	VisibleGeometries int
	VisibleLights     int
}

// threadZRange is one worker's partial scene depth range, padded to its own cache line.
type threadZRange struct {
	r common.FloatRange
	_ [56]byte
}

type processorCounters struct {
	processed      thread_local.Counter
	distanceCulled thread_local.Counter
	zoneQueries    thread_local.Counter
	skippedBatches thread_local.Counter
	doubleUpdates  thread_local.Counter
	outOfRange     thread_local.Counter
}

func (c *processorCounters) clear(numThreads int) {
	c.processed.Clear(numThreads)
	c.distanceCulled.Clear(numThreads)
	c.zoneQueries.Clear(numThreads)
	c.skippedBatches.Clear(numThreads)
	c.doubleUpdates.Clear(numThreads)
	c.outOfRange.Clear(numThreads)
}

type drawableProcessor struct {
	wq     work_queue.WorkQueue
	passes []ScenePass

	defaultMaterial material.Material
	maxPixelLights  int

	ctx   FrameContext
	begun bool
	zCalc ZRangeCalculator

	isUpdated     []atomic.Bool
	geometryFlags []GeometryRenderFlag
	zRanges       []common.FloatRange
	lighting      []LightAccumulator

	threadZRanges   []threadZRange
	lightsAcc       *thread_local.Accumulator[light.Light]
	geometriesAcc   *thread_local.Accumulator[drawable.Drawable]
	mainThreadAcc   *thread_local.Accumulator[drawable.Drawable]
	workerThreadAcc *thread_local.Accumulator[drawable.Drawable]
	counters        processorCounters

	sceneZRange         common.FloatRange
	visibleLights       []light.Light
	visibleGeometries   []drawable.Drawable
	mainThreadUpdates   []drawable.Drawable
	workerThreadUpdates []drawable.Drawable
}

// DrawableProcessor classifies the visible drawables of one view per frame.
//
// A frame is OnUpdateBegin, then ProcessDrawables, then optionally ProcessLights. Aggregates
// and per-drawable results are valid from the return of ProcessDrawables until the next
// OnUpdateBegin. The processor itself is driven from a single goroutine.
type DrawableProcessor interface {
	// OnUpdateBegin captures the frame context, resizes the per-drawable arrays to
	// ctx.NumDrawables and resets all per-frame state, then notifies every pass.
	//
	// Parameters:
	//   - ctx: the frame context; Camera must be non-nil
	OnUpdateBegin(ctx *FrameContext)

	// ProcessDrawables classifies drawables across the work queue and merges the per-thread
	// results before returning.
	//
	// Parameters:
	//   - drawables: the frame's candidates; each drawable must appear at most once
	ProcessDrawables(drawables []drawable.Drawable)

	// ProcessLights fills the light list of every forward-lit visible geometry with the
	// visible lights affecting it, at most MaxPixelLights per drawable, lowest penalty first.
	ProcessLights()

	// SceneZRange returns the union of the view-space Z ranges of all bounded visible geometries.
	//
	// Returns:
	//   - common.FloatRange: the scene range, invalid when no bounded geometry is visible
	SceneZRange() common.FloatRange

	// VisibleLights returns the merged visible lights in worker slot order.
	VisibleLights() []light.Light

	// VisibleGeometries returns the merged visible geometries in worker slot order.
	VisibleGeometries() []drawable.Drawable

	// MainThreadGeometryUpdates returns visible geometries whose geometry must be refreshed on the main thread.
	MainThreadGeometryUpdates() []drawable.Drawable

	// WorkerThreadGeometryUpdates returns visible geometries whose geometry may be refreshed off the main thread.
	WorkerThreadGeometryUpdates() []drawable.Drawable

	// GeometryFlags returns the render flags of a drawable index, zero when out of range.
	GeometryFlags(index int) GeometryRenderFlag

	// DrawableZRange returns the view-space Z range of a drawable index. Unbounded geometry
	// holds common.UnboundedRange; drawables not classified as geometry hold an empty range.
	DrawableZRange(index int) common.FloatRange

	// LightAccumulator returns the lighting of a drawable index, or nil when out of range.
	LightAccumulator(index int) *LightAccumulator

	// IsDrawableUpdated reports whether a drawable index was processed this frame.
	IsDrawableUpdated(index int) bool

	// NumDrawables returns the size of the per-drawable arrays for the current frame.
	NumDrawables() int

	// FrameContext returns the captured context of the current frame.
	FrameContext() *FrameContext

	// Passes returns the registered passes in registration order.
	Passes() []ScenePass

	// AddPass registers a pass. Must not be called between OnUpdateBegin and the end of ProcessDrawables.
	AddPass(pass ScenePass)

	// MaxPixelLights returns the per-drawable light cap used by ProcessLights.
	MaxPixelLights() int

	// SetMaxPixelLights changes the per-drawable light cap.
	SetMaxPixelLights(n int)

	// Stats returns counters for the last processed frame.
	Stats() ProcessorStats
}

var _ DrawableProcessor = &drawableProcessor{}

// NewDrawableProcessor creates a DrawableProcessor that distributes classification over wq.
//
// Parameters:
//   - wq: the work queue; must not be nil
//   - options: functional options to configure the processor
//
// Returns:
//   - DrawableProcessor: the new processor
func NewDrawableProcessor(wq work_queue.WorkQueue, options ...DrawableProcessorBuilderOption) DrawableProcessor {
	if wq == nil {
		panic("render_pipeline: NewDrawableProcessor requires a non-nil WorkQueue")
	}
	p := &drawableProcessor{
		wq:              wq,
		maxPixelLights:  DefaultSettings().MaxPixelLights,
		lightsAcc:       thread_local.NewAccumulator[light.Light](1),
		geometriesAcc:   thread_local.NewAccumulator[drawable.Drawable](1),
		mainThreadAcc:   thread_local.NewAccumulator[drawable.Drawable](1),
		workerThreadAcc: thread_local.NewAccumulator[drawable.Drawable](1),
		sceneZRange:     common.EmptyFloatRange(),
	}
	for _, option := range options {
		option(p)
	}
	if p.defaultMaterial == nil {
		p.defaultMaterial = material.DefaultMaterial()
	}
	return p
}

func (p *drawableProcessor) OnUpdateBegin(ctx *FrameContext) {
	if ctx == nil || ctx.Camera == nil {
		panic("render_pipeline: OnUpdateBegin requires a FrameContext with a Camera")
	}
	p.ctx = *ctx
	p.ctx.NumThreads = max(p.ctx.NumThreads, p.wq.NumThreads(), 1)
	p.ctx.NumDrawables = max(p.ctx.NumDrawables, 0)
	if p.ctx.FrameInfo.Camera == nil {
		p.ctx.FrameInfo.Camera = p.ctx.Camera
	}
	p.ctx.FrameInfo.NumThreads = p.ctx.NumThreads
	if p.ctx.Camera.ViewOverrideFlags()&camera.ViewOverrideLowMaterialQuality != 0 {
		p.ctx.MaterialQuality = material.QualityLow
	}
	p.zCalc = NewZRangeCalculator(p.ctx.Camera.ViewMatrix())
	p.begun = true

	n := p.ctx.NumDrawables
	if cap(p.isUpdated) < n {
		p.isUpdated = make([]atomic.Bool, n)
		p.geometryFlags = make([]GeometryRenderFlag, n)
		p.zRanges = make([]common.FloatRange, n)
		lighting := make([]LightAccumulator, n)
		copy(lighting, p.lighting)
		p.lighting = lighting
	}
	p.isUpdated = p.isUpdated[:n]
	p.geometryFlags = p.geometryFlags[:n]
	p.zRanges = p.zRanges[:n]
	p.lighting = p.lighting[:n]
	empty := common.EmptyFloatRange()
	for i := 0; i < n; i++ {
		p.isUpdated[i].Store(false)
		p.geometryFlags[i] = 0
		p.zRanges[i] = empty
		p.lighting[i].Reset()
	}

	numThreads := p.ctx.NumThreads
	if cap(p.threadZRanges) < numThreads {
		p.threadZRanges = make([]threadZRange, numThreads)
	}
	p.threadZRanges = p.threadZRanges[:numThreads]
	for i := range p.threadZRanges {
		p.threadZRanges[i].r = empty
	}
	p.lightsAcc.Clear(numThreads)
	p.geometriesAcc.Clear(numThreads)
	p.mainThreadAcc.Clear(numThreads)
	p.workerThreadAcc.Clear(numThreads)
	p.counters.clear(numThreads)

	p.sceneZRange = empty
	p.visibleLights = p.visibleLights[:0]
	p.visibleGeometries = p.visibleGeometries[:0]
	p.mainThreadUpdates = p.mainThreadUpdates[:0]
	p.workerThreadUpdates = p.workerThreadUpdates[:0]

	for _, pass := range p.passes {
		pass.OnUpdateBegin(&p.ctx)
	}
}

func (p *drawableProcessor) ProcessDrawables(drawables []drawable.Drawable) {
	if !p.begun {
		panic("render_pipeline: ProcessDrawables called before OnUpdateBegin")
	}
	work_queue.ForEachParallel(p.wq, drawables, func(threadIndex, _ int, d drawable.Drawable) {
		p.classify(threadIndex, d)
	})
	p.merge()
}

// classify runs on worker slot threadIndex and writes only to that slot and to the
// per-drawable state of d's index.
func (p *drawableProcessor) classify(threadIndex int, d drawable.Drawable) {
	if d == nil {
		return
	}
	index := d.DrawableIndex()
	if index < 0 || index >= len(p.isUpdated) {
		p.counters.outOfRange.Add(threadIndex, 1)
		return
	}
	if !d.Enabled() {
		return
	}
	if p.isUpdated[index].Swap(true) {
		p.counters.doubleUpdates.Add(threadIndex, 1)
		return
	}
	p.counters.processed.Add(threadIndex, 1)

	d.UpdateBatches(&p.ctx.FrameInfo)
	d.MarkInView(&p.ctx.FrameInfo)

	if drawDistance := d.DrawDistance(); drawDistance > 0 && d.Distance() > drawDistance {
		p.counters.distanceCulled.Add(threadIndex, 1)
		return
	}

	flags := d.Flags()
	if flags&drawable.DrawableGeometry != 0 {
		p.classifyGeometry(threadIndex, index, d)
		return
	}
	if flags&drawable.DrawableLight != 0 {
		l, ok := d.(light.Light)
		if !ok {
			return
		}
		if l.EffectiveColor().Equals(common.Black) || l.LightMaskEffective() == 0 {
			return
		}
		p.lightsAcc.PushBack(threadIndex, l)
	}
}

// passNeedsAmbient treats passes that do not report an ambient requirement as needing it.
func passNeedsAmbient(pass ScenePass) bool {
	if a, ok := pass.(interface{ NeedAmbient() bool }); ok {
		return a.NeedAmbient()
	}
	return true
}

func (p *drawableProcessor) classifyGeometry(threadIndex, index int, d drawable.Drawable) {
	box := d.WorldBoundingBox()
	if zRange := p.zCalc.Calculate(box); zRange.IsValid() {
		p.zRanges[index] = zRange
		slot := &p.threadZRanges[threadIndex]
		slot.r = slot.r.Union(zRange)
	} else {
		p.zRanges[index] = common.UnboundedRange
	}

	center := box.Center()
	cachedZone := d.MutableCachedZone()
	if !cachedZone.IsValidAt(center) {
		p.counters.zoneQueries.Add(threadIndex, 1)
		if p.ctx.SpatialIndex != nil {
			if resolved := p.ctx.SpatialIndex.QueryZone(center, d.ZoneMask()); resolved.Zone != nil {
				*cachedZone = resolved
			}
		}
		d.MarkPipelineStateHashDirty()
	}

	isForwardLit := false
	needAmbient := false
	for i, batch := range d.Batches() {
		mat := batch.Material
		if mat == nil {
			mat = p.defaultMaterial
		}
		tech := mat.FindTechnique(d, p.ctx.MaterialQuality)
		if tech == nil {
			p.counters.skippedBatches.Add(threadIndex, 1)
			continue
		}
		for _, pass := range p.passes {
			if pass.AddBatch(threadIndex, d, i, tech) {
				isForwardLit = true
				needAmbient = needAmbient || passNeedsAmbient(pass)
			}
		}
	}
	isLit := isForwardLit

	if isLit {
		acc := &p.lighting[index]
		if isForwardLit {
			acc.ResetLights()
		}
		acc.SH = common.SphericalHarmonicsDot9{}
		if needAmbient {
			if d.GlobalIlluminationType() >= drawable.BlendLightProbes && p.ctx.GI != nil {
				acc.SH = p.ctx.GI.SampleAmbientSH(center, d.MutableLightProbeHint())
			}
			if cachedZone.Zone != nil {
				acc.SH.AddAmbient(cachedZone.Zone.LinearAmbient())
			}
		}
	}

	p.geometriesAcc.PushBack(threadIndex, d)
	renderFlags := GeometryVisible
	if isLit {
		renderFlags |= GeometryLit
	}
	if isForwardLit {
		renderFlags |= GeometryForwardLit
	}
	p.geometryFlags[index] = renderFlags

	if d.UpdateGeometryType() == drawable.UpdateMainThread {
		p.mainThreadAcc.PushBack(threadIndex, d)
	} else {
		p.workerThreadAcc.PushBack(threadIndex, d)
	}
}

// merge reduces the per-thread results. Runs on the calling goroutine after the parallel phase.
func (p *drawableProcessor) merge() {
	p.sceneZRange = common.EmptyFloatRange()
	for i := range p.threadZRanges {
		p.sceneZRange = p.sceneZRange.Union(p.threadZRanges[i].r)
	}
	p.visibleLights = p.lightsAcc.AppendTo(p.visibleLights[:0])
	p.visibleGeometries = p.geometriesAcc.AppendTo(p.visibleGeometries[:0])
	p.mainThreadUpdates = p.mainThreadAcc.AppendTo(p.mainThreadUpdates[:0])
	p.workerThreadUpdates = p.workerThreadAcc.AppendTo(p.workerThreadUpdates[:0])

	for _, pass := range p.passes {
		pass.OnUpdateEnd()
	}

	if n := p.counters.doubleUpdates.Total(); n > 0 {
		log.Printf("[DrawableProcessor] frame %d: %d drawables submitted more than once, extra submissions ignored", p.ctx.FrameInfo.FrameNumber, n)
	}
	if n := p.counters.outOfRange.Total(); n > 0 {
		log.Printf("[DrawableProcessor] frame %d: %d drawables outside the %d frame slots were skipped", p.ctx.FrameInfo.FrameNumber, n, len(p.isUpdated))
	}
}

func (p *drawableProcessor) ProcessLights() {
	if len(p.visibleLights) == 0 || p.maxPixelLights <= 0 {
		return
	}
	lights := p.visibleLights
	maxLights := p.maxPixelLights
	work_queue.ForEachParallel(p.wq, p.visibleGeometries, func(_, _ int, d drawable.Drawable) {
		index := d.DrawableIndex()
		if !p.geometryFlags[index].Has(GeometryForwardLit) {
			return
		}
		box := d.WorldBoundingBox()
		lightMask := d.LightMask()
		acc := &p.lighting[index]
		for _, l := range lights {
			if l.LightMaskEffective()&lightMask == 0 || !l.IntersectsBox(box) {
				continue
			}
			acc.AccumulateLight(l, l.Penalty(box), maxLights)
		}
	})
}

func (p *drawableProcessor) SceneZRange() common.FloatRange {
	return p.sceneZRange
}

func (p *drawableProcessor) VisibleLights() []light.Light {
	return p.visibleLights
}

func (p *drawableProcessor) VisibleGeometries() []drawable.Drawable {
	return p.visibleGeometries
}

func (p *drawableProcessor) MainThreadGeometryUpdates() []drawable.Drawable {
	return p.mainThreadUpdates
}

func (p *drawableProcessor) WorkerThreadGeometryUpdates() []drawable.Drawable {
	return p.workerThreadUpdates
}

func (p *drawableProcessor) GeometryFlags(index int) GeometryRenderFlag {
	if index < 0 || index >= len(p.geometryFlags) {
		return 0
	}
	return p.geometryFlags[index]
}

func (p *drawableProcessor) DrawableZRange(index int) common.FloatRange {
	if index < 0 || index >= len(p.zRanges) {
		return common.EmptyFloatRange()
	}
	return p.zRanges[index]
}

func (p *drawableProcessor) LightAccumulator(index int) *LightAccumulator {
	if index < 0 || index >= len(p.lighting) {
		return nil
	}
	return &p.lighting[index]
}

func (p *drawableProcessor) IsDrawableUpdated(index int) bool {
	if index < 0 || index >= len(p.isUpdated) {
		return false
	}
	return p.isUpdated[index].Load()
}

func (p *drawableProcessor) NumDrawables() int {
	return len(p.isUpdated)
}

func (p *drawableProcessor) FrameContext() *FrameContext {
	return &p.ctx
}

func (p *drawableProcessor) Passes() []ScenePass {
	return p.passes
}

func (p *drawableProcessor) AddPass(pass ScenePass) {
	if pass == nil {
		return
	}
	p.passes = append(p.passes, pass)
}

func (p *drawableProcessor) MaxPixelLights() int {
	return p.maxPixelLights
}

func (p *drawableProcessor) SetMaxPixelLights(n int) {
	p.maxPixelLights = max(n, 0)
}

func (p *drawableProcessor) Stats() ProcessorStats {
	return ProcessorStats{
		Processed:         p.counters.processed.Total(),
		DistanceCulled:    p.counters.distanceCulled.Total(),
		ZoneQueries:       p.counters.zoneQueries.Total(),
		SkippedBatches:    p.counters.skippedBatches.Total(),
		DoubleUpdates:     p.counters.doubleUpdates.Total(),
		OutOfRange:        p.counters.outOfRange.Total(),
		VisibleGeometries: len(p.visibleGeometries),
		VisibleLights:     len(p.visibleLights),
	}
}
