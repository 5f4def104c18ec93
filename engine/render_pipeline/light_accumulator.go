package render_pipeline

import (
	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/light"
)

// LightEntry is one light affecting a drawable, ranked by penalty.
type LightEntry struct {
	Light   light.Light
	Penalty float32
}

// LightAccumulator collects the lighting of one drawable for the current frame: ambient
// spherical harmonics plus the most important per-pixel lights.
type LightAccumulator struct {
	SH     common.SphericalHarmonicsDot9
	Lights []LightEntry
}

// Reset clears ambient and lights, keeping list capacity.
func (a *LightAccumulator) Reset() {
	a.SH = common.SphericalHarmonicsDot9{}
	a.Lights = a.Lights[:0]
}

// ResetLights clears the light list, keeping capacity.
func (a *LightAccumulator) ResetLights() {
	a.Lights = a.Lights[:0]
}

// AccumulateLight inserts a light in ascending penalty order, keeping at most maxLights entries.
// Equal penalties keep insertion order.
//
// Parameters:
//   - l: the light
//   - penalty: lower is more important
//   - maxLights: list capacity; zero or less drops every light
//
// Returns:
//   - bool: true if the light is in the list afterwards
func (a *LightAccumulator) AccumulateLight(l light.Light, penalty float32, maxLights int) bool {
	if maxLights <= 0 {
		return false
	}
	pos := len(a.Lights)
	for pos > 0 && a.Lights[pos-1].Penalty > penalty {
		pos--
	}
	if pos >= maxLights {
		return false
	}
	if len(a.Lights) < maxLights {
		a.Lights = append(a.Lights, LightEntry{})
	}
	copy(a.Lights[pos+1:], a.Lights[pos:len(a.Lights)-1])
	a.Lights[pos] = LightEntry{Light: l, Penalty: penalty}
	return true
}

// NumLights returns the number of accumulated lights.
func (a *LightAccumulator) NumLights() int {
	return len(a.Lights)
}
