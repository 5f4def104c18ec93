package profiler

import (
	"log"
	"runtime"
	"time"
)

// FrameStats are the visibility counters of one processed frame.
type FrameStats struct {
	DrawablesProcessed int
	DistanceCulled     int
	VisibleGeometries  int
	VisibleLights      int
	ZoneQueries        int
}

// Report is the summary produced each time the update interval elapses.
type Report struct {
	FPS               float64
	AvgProcessed      float64
	AvgCulled         float64
	AvgGeometries     float64
	AvgLights         float64
	ZoneQueriesPerSec float64
	HeapMB            float64
	AllocRateMB       float64
	GCCount           uint32
	LastPauseUs       uint64
	MaxPauseUs        uint64
	SysMB             float64
}

// Profiler tracks frame rate, visibility counters and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	silent         bool

	totals     FrameStats
	lastReport Report
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// RecordFrame adds one frame's visibility counters to the current interval.
//
// Parameters:
//   - stats: the frame's counters
func (p *Profiler) RecordFrame(stats FrameStats) {
	p.totals.DrawablesProcessed += stats.DrawablesProcessed
	p.totals.DistanceCulled += stats.DistanceCulled
	p.totals.VisibleGeometries += stats.VisibleGeometries
	p.totals.VisibleLights += stats.VisibleLights
	p.totals.ZoneQueries += stats.ZoneQueries
}

// LastReport returns the report built by the most recent interval.
func (p *Profiler) LastReport() Report {
	return p.lastReport
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, average visibility counters per frame, heap usage, allocation rate,
// GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}
	seconds := max(elapsed.Seconds(), 1e-9)
	frames := float64(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap. TotalAlloc: cumulative, tracks churn. Sys: process footprint.
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.lastReport = Report{
		FPS:               frames / seconds,
		AvgProcessed:      float64(p.totals.DrawablesProcessed) / frames,
		AvgCulled:         float64(p.totals.DistanceCulled) / frames,
		AvgGeometries:     float64(p.totals.VisibleGeometries) / frames,
		AvgLights:         float64(p.totals.VisibleLights) / frames,
		ZoneQueriesPerSec: float64(p.totals.ZoneQueries) / seconds,
		HeapMB:            float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:       float64(allocDelta) / 1024 / 1024 / seconds,
		GCCount:           gcCount,
		LastPauseUs:       lastPauseUs,
		MaxPauseUs:        maxPauseUs,
		SysMB:             float64(p.memStats.Sys) / 1024 / 1024,
	}
	if !p.silent {
		r := p.lastReport
		log.Printf("[Profiler] FPS: %.2f | Drawables: %.0f (culled %.0f) | Geometries: %.0f | Lights: %.0f | Zone queries: %.0f/s | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			r.FPS, r.AvgProcessed, r.AvgCulled, r.AvgGeometries, r.AvgLights, r.ZoneQueriesPerSec, r.HeapMB, r.AllocRateMB, r.GCCount, r.LastPauseUs, r.MaxPauseUs, r.SysMB)
	}

	p.frameCount = 0
	p.totals = FrameStats{}
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
