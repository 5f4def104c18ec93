package material

import "github.com/Carmen-Shannon/oxy-pipeline/common"

// MaterialBuilderOption is a functional option for configuring a Material.
type MaterialBuilderOption func(*material)

// WithName sets the material's name.
//
// Parameters:
//   - name: the material identifier
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor sets the material's albedo color.
//
// Parameters:
//   - color: the RGBA base color
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithBaseColor(color common.Color) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithTechnique adds a technique candidate.
//
// Parameters:
//   - technique: the technique
//   - quality: minimum material quality for this entry
//   - lodDistance: minimum LOD distance for this entry
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithTechnique(technique Technique, quality MaterialQuality, lodDistance float32) MaterialBuilderOption {
	return func(m *material) {
		m.techniques = append(m.techniques, TechniqueEntry{
			Technique:   technique,
			Quality:     quality,
			LodDistance: lodDistance,
		})
	}
}
