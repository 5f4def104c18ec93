package global_illumination

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/go-gl/mathgl/mgl32"
)

// LightProbe is a baked sample of incoming indirect light at a point.
type LightProbe struct {
	Position mgl32.Vec3
	SH       common.SphericalHarmonicsDot9
}

type globalIllumination struct {
	mu     sync.RWMutex
	probes []LightProbe
	// safeRadiusSq[i] is (half the distance from probe i to its nearest neighbour)^2. Any point inside
	// that radius has probe i as its nearest probe.
	safeRadiusSq []float32
}

// GlobalIllumination samples baked indirect lighting from a set of light probes.
// Sampling is safe from many goroutines at once; the per-caller hint must not be shared.
type GlobalIllumination interface {
	// SampleAmbientSH returns the indirect lighting at position as dot-product spherical harmonics.
	// The hint is the index of the probe found last time for the same caller; it is read to skip
	// the search when still valid and overwritten with the probe that was used.
	//
	// Parameters:
	//   - position: world-space sample point
	//   - hint: per-drawable search hint, -1 when unknown
	//
	// Returns:
	//   - common.SphericalHarmonicsDot9: the sampled lighting, zero when there are no probes
	SampleAmbientSH(position mgl32.Vec3, hint *int) common.SphericalHarmonicsDot9

	// AddProbe registers a probe.
	//
	// Parameters:
	//   - probe: the probe to add
	AddProbe(probe LightProbe)

	NumProbes() int
}

var _ GlobalIllumination = &globalIllumination{}

// NewGlobalIllumination creates a probe set from the given probes.
//
// Parameters:
//   - probes: initial probes
//
// Returns:
//   - GlobalIllumination: the probe set
func NewGlobalIllumination(probes ...LightProbe) GlobalIllumination {
	gi := &globalIllumination{}
	gi.probes = append(gi.probes, probes...)
	gi.rebuild()
	return gi
}

// rebuild recomputes safe radii. Caller must hold the write lock or have exclusive access.
func (gi *globalIllumination) rebuild() {
	gi.safeRadiusSq = make([]float32, len(gi.probes))
	for i := range gi.probes {
		nearest := float32(-1)
		for j := range gi.probes {
			if i == j {
				continue
			}
			d := gi.probes[i].Position.Sub(gi.probes[j].Position).LenSqr()
			if nearest < 0 || d < nearest {
				nearest = d
			}
		}
		if nearest < 0 {
			gi.safeRadiusSq[i] = common.LargeValue * common.LargeValue
		} else {
			// (sqrt(nearest)/2)^2
			gi.safeRadiusSq[i] = nearest / 4
		}
	}
}

func (gi *globalIllumination) AddProbe(probe LightProbe) {
	gi.mu.Lock()
	defer gi.mu.Unlock()
	gi.probes = append(gi.probes, probe)
	gi.rebuild()
}

func (gi *globalIllumination) NumProbes() int {
	gi.mu.RLock()
	defer gi.mu.RUnlock()
	return len(gi.probes)
}

func (gi *globalIllumination) SampleAmbientSH(position mgl32.Vec3, hint *int) common.SphericalHarmonicsDot9 {
	gi.mu.RLock()
	defer gi.mu.RUnlock()

	if len(gi.probes) == 0 {
		if hint != nil {
			*hint = -1
		}
		return common.SphericalHarmonicsDot9{}
	}

	if hint != nil && *hint >= 0 && *hint < len(gi.probes) {
		h := *hint
		if gi.probes[h].Position.Sub(position).LenSqr() <= gi.safeRadiusSq[h] {
			return gi.probes[h].SH
		}
	}

	best := 0
	bestDist := gi.probes[0].Position.Sub(position).LenSqr()
	for i := 1; i < len(gi.probes); i++ {
		if d := gi.probes[i].Position.Sub(position).LenSqr(); d < bestDist {
			best, bestDist = i, d
		}
	}
	if hint != nil {
		*hint = best
	}
	return gi.probes[best].SH
}
