package profiler

import (
	"testing"
	"time"
)

func TestProfiler_AveragesFrameStats(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(time.Hour), WithSilent())

	p.RecordFrame(FrameStats{DrawablesProcessed: 10, VisibleGeometries: 6, VisibleLights: 2})
	if p.Tick() {
		t.Fatal("expected no report before the interval elapses")
	}
	p.RecordFrame(FrameStats{DrawablesProcessed: 20, VisibleGeometries: 8, VisibleLights: 4})

	p.updateInterval = 0
	if !p.Tick() {
		t.Fatal("expected a report once the interval elapsed")
	}
	r := p.LastReport()
	if r.AvgProcessed != 15 {
		t.Fatalf("expected 15 drawables per frame, got %f", r.AvgProcessed)
	}
	if r.AvgGeometries != 7 || r.AvgLights != 3 {
		t.Fatalf("expected 7 geometries and 3 lights per frame, got %f and %f", r.AvgGeometries, r.AvgLights)
	}
	if r.FPS <= 0 {
		t.Fatalf("expected positive FPS, got %f", r.FPS)
	}

	if !p.Tick() {
		t.Fatal("expected a report on every tick with a zero interval")
	}
	if p.LastReport().AvgProcessed != 0 {
		t.Fatalf("expected totals reset after a report, got %f", p.LastReport().AvgProcessed)
	}
}
