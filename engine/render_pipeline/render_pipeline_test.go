package render_pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/camera"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/global_illumination"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/light"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/profiler"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/scene"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/work_queue"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/zone"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewRenderPipeline_PanicsWithoutScene(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil scene")
		}
	}()
	NewRenderPipeline(nil)
}

func TestRenderPipeline_Update(t *testing.T) {
	front := drawable.NewDrawable(drawable.WithRotationSpeed(mgl32.Vec3{0, 1, 0}))
	behind := drawable.NewDrawable(drawable.WithPosition(mgl32.Vec3{0, 0, 30}))
	lamp := light.NewLight(light.LightTypePoint, light.WithPosition(mgl32.Vec3{1, 1, 0}))
	room := zone.NewZone(zone.WithAmbientColor(common.Color{R: 0.3, G: 0.3, B: 0.3, A: 1}))

	s := scene.NewScene("main", camera.NewCamera(),
		scene.WithDrawables(front, behind, lamp),
		scene.WithZones(room),
		scene.WithGlobalIllumination(global_illumination.NewGlobalIllumination()),
	)
	wq := work_queue.NewWorkQueue(work_queue.WithWorkers(2), work_queue.WithMinBatchSize(1))
	defer wq.Stop()

	rp := NewRenderPipeline(s, WithWorkQueue(wq))
	rp.Update(0.5)

	if rp.FrameNumber() != 1 {
		t.Fatalf("expected frame 1, got %d", rp.FrameNumber())
	}
	proc := rp.Processor()
	if got := proc.VisibleGeometries(); len(got) != 1 || got[0] != front {
		t.Fatalf("expected only the drawable in front of the camera visible, got %d", len(got))
	}
	if len(proc.VisibleLights()) != 1 {
		t.Fatalf("expected 1 visible light, got %d", len(proc.VisibleLights()))
	}
	if !front.IsInView(1) || behind.IsInView(1) {
		t.Fatal("expected only the front drawable marked in view")
	}
	if !front.Rotation().ApproxEqual(mgl32.Vec3{0, 0.5, 0}) {
		t.Fatalf("expected rotation advanced by the time step, got %v", front.Rotation())
	}

	acc := proc.LightAccumulator(front.DrawableIndex())
	if acc.NumLights() != 1 || acc.Lights[0].Light != lamp {
		t.Fatalf("expected the lamp on the front drawable, got %d lights", acc.NumLights())
	}
	if !acc.SH.Ambient().ApproxEqualThreshold(room.LinearAmbient(), 1e-6) {
		t.Fatalf("expected room ambient %v, got %v", room.LinearAmbient(), acc.SH.Ambient())
	}
	if !proc.SceneZRange().IsValid() {
		t.Fatal("expected a valid scene Z range")
	}

	passes := rp.SceneRenderingPasses()
	if len(passes) != 1 || len(passes[0].LitBatches()) != 1 {
		t.Fatal("expected the default pass to hold one lit batch")
	}
}

func TestRenderPipeline_ProfilerAndSettings(t *testing.T) {
	s := scene.NewScene("main", camera.NewCamera(),
		scene.WithDrawables(drawable.NewDrawable(), drawable.NewDrawable(drawable.WithPosition(mgl32.Vec3{0, 0, 30}))),
	)
	prof := profiler.NewProfiler(profiler.WithUpdateInterval(0), profiler.WithSilent())
	rp := NewRenderPipeline(s, WithProfiler(prof))
	defer rp.Stop()

	rp.Update(0)
	prof.Tick()
	if got := prof.LastReport().AvgGeometries; got != 1 {
		t.Fatalf("expected 1 geometry per frame with frustum culling, got %f", got)
	}

	settings := rp.Settings()
	settings.FrustumCulling = false
	rp.SetSettings(settings)
	rp.Update(0)
	prof.Tick()
	if got := prof.LastReport().AvgGeometries; got != 2 {
		t.Fatalf("expected 2 geometries per frame without frustum culling, got %f", got)
	}
	if rp.FrameNumber() != 2 {
		t.Fatalf("expected frame 2, got %d", rp.FrameNumber())
	}
}

func TestRenderPipeline_IndicesFollowRemoval(t *testing.T) {
	a := drawable.NewDrawable()
	b := drawable.NewDrawable(drawable.WithPosition(mgl32.Vec3{1, 0, 0}))
	c := drawable.NewDrawable(drawable.WithPosition(mgl32.Vec3{-1, 0, 0}))
	s := scene.NewScene("main", camera.NewCamera(), scene.WithDrawables(a, b, c))
	rp := NewRenderPipeline(s, WithSettings(Settings{MaxPixelLights: 2}))
	defer rp.Stop()

	rp.Update(0)
	if err := s.Remove(a.ID()); err != nil {
		t.Fatalf("expected remove to succeed, got %v", err)
	}
	rp.Update(0)

	proc := rp.Processor()
	if proc.NumDrawables() != 2 {
		t.Fatalf("expected 2 slots after removal, got %d", proc.NumDrawables())
	}
	if len(proc.VisibleGeometries()) != 2 || proc.Stats().OutOfRange != 0 {
		t.Fatalf("expected both remaining drawables visible, got %d", len(proc.VisibleGeometries()))
	}
	for _, d := range []drawable.Drawable{b, c} {
		if proc.GeometryFlags(d.DrawableIndex()) == 0 {
			t.Fatalf("expected drawable %d flagged visible", d.ID())
		}
	}
}
