package material

import (
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
)

// MaterialQuality selects between technique variants.
type MaterialQuality int

const (
	QualityLow    MaterialQuality = 0
	QualityMedium MaterialQuality = 1
	QualityHigh   MaterialQuality = 2
	QualityMax    MaterialQuality = 15
)

// TechniqueEntry is one technique candidate of a material.
type TechniqueEntry struct {
	Technique Technique
	// Quality is the minimum material quality at which the entry may be chosen.
	Quality MaterialQuality
	// LodDistance is the minimum LOD distance at which the entry may be chosen.
	LodDistance float32
}

// LodSource is anything with a LOD distance, typically a drawable.
type LodSource interface {
	LodDistance() float32
}

// material is the implementation of the Material interface.
type material struct {
	name       string
	baseColor  common.Color
	techniques []TechniqueEntry
}

// Material defines the interface for a render material: surface parameters plus an ordered list
// of technique candidates chosen per drawable by LOD distance and quality.
//
// Materials are immutable once built and are queried concurrently by visibility workers.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo RGBA color of the material.
	//
	// Returns:
	//   - common.Color: the base color
	BaseColor() common.Color

	// Techniques returns the technique entries sorted by LOD distance, then quality, both descending.
	//
	// Returns:
	//   - []TechniqueEntry: the entries
	Techniques() []TechniqueEntry

	// FindTechnique picks the first entry whose quality does not exceed the requested quality and
	// whose LOD distance does not exceed the drawable's. When no entry qualifies the last entry is used.
	// Returns nil only when the material has no techniques.
	//
	// Parameters:
	//   - source: the drawable being rendered
	//   - quality: the material quality in effect for the frame
	//
	// Returns:
	//   - Technique: the selected technique or nil
	FindTechnique(source LodSource, quality MaterialQuality) Technique
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: common.White,
	}
	for _, opt := range options {
		opt(m)
	}
	sort.SliceStable(m.techniques, func(i, j int) bool {
		a, b := m.techniques[i], m.techniques[j]
		if a.LodDistance != b.LodDistance {
			return a.LodDistance > b.LodDistance
		}
		return a.Quality > b.Quality
	})
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() common.Color {
	return m.baseColor
}

func (m *material) Techniques() []TechniqueEntry {
	return m.techniques
}

func (m *material) FindTechnique(source LodSource, quality MaterialQuality) Technique {
	if len(m.techniques) == 0 {
		return nil
	}
	var lodDistance float32
	if source != nil {
		lodDistance = source.LodDistance()
	}
	for _, entry := range m.techniques {
		if entry.Technique != nil && entry.Quality <= quality && lodDistance >= entry.LodDistance {
			return entry.Technique
		}
	}
	return m.techniques[len(m.techniques)-1].Technique
}

var (
	defaultMaterialOnce sync.Once
	defaultMaterial     Material
)

// DefaultMaterial returns the shared material used for batches that have none.
// Its single technique provides base, litbase and light passes.
//
// Returns:
//   - Material: the default material
func DefaultMaterial() Material {
	defaultMaterialOnce.Do(func() {
		defaultMaterial = NewMaterial(
			WithName("default"),
			WithTechnique(NewTechnique("NoTexture", "base", "litbase", "light"), QualityLow, 0),
		)
	})
	return defaultMaterial
}
