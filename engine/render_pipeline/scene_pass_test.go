package render_pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/material"
)

func TestSceneRenderingPass_Routing(t *testing.T) {
	tests := []struct {
		name      string
		passes    []string
		wantLit   bool
		litBase   string
		litLight  bool
		unlitBase string
	}{
		{name: "litbase and light", passes: []string{"litbase", "light"}, wantLit: true, litBase: "litbase", litLight: true},
		{name: "all stages prefer litbase", passes: []string{"base", "litbase", "light"}, wantLit: true, litBase: "litbase", litLight: true},
		{name: "base and light", passes: []string{"base", "light"}, wantLit: true, litLight: true, unlitBase: "base"},
		{name: "base only", passes: []string{"base"}, unlitBase: "base"},
		{name: "light only", passes: []string{"light"}},
		{name: "no scene stages", passes: []string{"shadow"}},
	}

	d := drawable.NewDrawable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pass := NewSceneRenderingPass()
			pass.OnUpdateBegin(&FrameContext{NumThreads: 2})

			tech := material.NewTechnique(tt.name, tt.passes...)
			if got := pass.AddBatch(1, d, 0, tech); got != tt.wantLit {
				t.Fatalf("expected lit=%v, got %v", tt.wantLit, got)
			}
			pass.OnUpdateEnd()

			lit, unlit := pass.LitBatches(), pass.UnlitBatches()
			if tt.litLight {
				if len(lit) != 1 || lit[0].LightPass == nil || lit[0].LightPass.Name != "light" {
					t.Fatalf("expected one lit batch with the light stage, got %+v", lit)
				}
				gotBase := ""
				if lit[0].BasePass != nil {
					gotBase = lit[0].BasePass.Name
				}
				if gotBase != tt.litBase {
					t.Fatalf("expected lit base stage %q, got %q", tt.litBase, gotBase)
				}
			} else if len(lit) != 0 {
				t.Fatalf("expected no lit batches, got %d", len(lit))
			}

			if tt.unlitBase != "" {
				if len(unlit) != 1 || unlit[0].BasePass == nil || unlit[0].BasePass.Name != tt.unlitBase {
					t.Fatalf("expected one unlit batch on %q, got %+v", tt.unlitBase, unlit)
				}
				if unlit[0].Drawable != d || unlit[0].SourceBatchIndex != 0 {
					t.Fatal("expected the unlit batch to reference the drawable's first batch")
				}
			} else if len(unlit) != 0 {
				t.Fatalf("expected no unlit batches, got %d", len(unlit))
			}
		})
	}
}

func TestSceneRenderingPass_CustomStages(t *testing.T) {
	pass := NewSceneRenderingPass(
		WithPassName("alpha"),
		WithUnlitBasePass("alpha"),
		WithLitBasePass("litalpha"),
		WithLightPass("light"),
	)
	pass.OnUpdateBegin(&FrameContext{NumThreads: 1})
	if pass.Name() != "alpha" {
		t.Fatalf("expected name alpha, got %q", pass.Name())
	}

	d := drawable.NewDrawable()
	if pass.AddBatch(0, d, 0, material.NewTechnique("opaque", "base", "litbase", "light")) {
		t.Fatal("expected an opaque technique to be rejected by the alpha pass")
	}
	if !pass.AddBatch(0, d, 0, material.NewTechnique("alpha", "alpha", "litalpha", "light")) {
		t.Fatal("expected the alpha technique to be lit")
	}
	pass.OnUpdateEnd()
	if len(pass.LitBatches()) != 1 || len(pass.UnlitBatches()) != 0 {
		t.Fatalf("expected 1 lit and 0 unlit batches, got %d and %d", len(pass.LitBatches()), len(pass.UnlitBatches()))
	}

	pass.OnUpdateBegin(&FrameContext{NumThreads: 1})
	pass.OnUpdateEnd()
	if len(pass.LitBatches()) != 0 {
		t.Fatal("expected batches cleared at frame begin")
	}

	if got := NewSceneRenderingPass(WithPassName("")).Name(); got != "scene" {
		t.Fatalf("expected empty name to keep the default, got %q", got)
	}
}
