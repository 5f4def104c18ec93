package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-pipeline/engine/camera"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/scene"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/work_queue"
)

func TestEngine_RunProcessesActiveScenes(t *testing.T) {
	wq := work_queue.NewWorkQueue(work_queue.WithWorkers(2))
	defer wq.Stop()

	active := scene.NewScene("active", camera.NewCamera(), scene.WithActive(true),
		scene.WithDrawables(drawable.NewDrawable(), drawable.NewDrawable()))
	idle := scene.NewScene("idle", camera.NewCamera(), scene.WithDrawables(drawable.NewDrawable()))

	e := NewEngine(WithWorkQueue(wq), WithScene(0, active), WithScene(1, idle), WithTickRate(1000))

	var ticks atomic.Int32
	e.SetTickCallback(func(float32) { ticks.Add(1) })
	e.SetRenderCallback(func(float32) {
		if e.RenderedFrames() >= 5 && ticks.Load() > 0 {
			e.Quit()
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		e.Quit()
		t.Fatal("engine did not stop after Quit")
	}

	if got := e.Pipeline(0).FrameNumber(); got < 5 {
		t.Fatalf("expected the active scene processed at least 5 times, got %d", got)
	}
	if got := e.Pipeline(1).FrameNumber(); got != 0 {
		t.Fatalf("expected the inactive scene skipped, got %d frames", got)
	}
	if n := len(e.Pipeline(0).Processor().VisibleGeometries()); n != 2 {
		t.Fatalf("expected 2 visible geometries, got %d", n)
	}
	e.Quit()
}

func TestEngine_SceneRegistry(t *testing.T) {
	e := NewEngine(WithWorkQueue(work_queue.NewWorkQueue(work_queue.WithWorkers(0))))
	s := scene.NewScene("s", camera.NewCamera())

	e.AddScene(3, s)
	if e.Scene(3) != s || e.Pipeline(3) == nil || e.Pipeline(3).Scene() != s {
		t.Fatal("expected the scene and its pipeline registered at key 3")
	}
	if len(e.Scenes()) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(e.Scenes()))
	}
	e.RemoveScene(3)
	if e.Scene(3) != nil || e.Pipeline(3) != nil {
		t.Fatal("expected the scene removed")
	}
}
