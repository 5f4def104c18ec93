package render_pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pipeline/engine/light"
)

func TestLightAccumulator_KeepsLowestPenalties(t *testing.T) {
	lights := make([]light.Light, 4)
	for i := range lights {
		lights[i] = light.NewLight(light.LightTypePoint)
	}

	var acc LightAccumulator
	acc.AccumulateLight(lights[0], 0.5, 3)
	acc.AccumulateLight(lights[1], 0.1, 3)
	acc.AccumulateLight(lights[2], 0.9, 3)
	if acc.AccumulateLight(lights[3], 1.5, 3) {
		t.Fatal("expected a light worse than a full list to be rejected")
	}
	if !acc.AccumulateLight(lights[3], 0.2, 3) {
		t.Fatal("expected a better light to displace the worst entry")
	}

	want := []light.Light{lights[1], lights[3], lights[0]}
	if acc.NumLights() != len(want) {
		t.Fatalf("expected %d lights, got %d", len(want), acc.NumLights())
	}
	for i, e := range acc.Lights {
		if e.Light != want[i] {
			t.Fatalf("entry %d: unexpected light with penalty %f", i, e.Penalty)
		}
	}

	acc.ResetLights()
	if acc.NumLights() != 0 {
		t.Fatalf("expected empty list after reset, got %d", acc.NumLights())
	}
	if acc.AccumulateLight(lights[0], 0, 0) {
		t.Fatal("expected no lights accepted with a zero cap")
	}
}
