package render_pipeline

// GeometryRenderFlag records how a visible geometry drawable will be rendered this frame.
type GeometryRenderFlag uint32

const (
	GeometryVisible GeometryRenderFlag = 1 << iota
	// GeometryLit means at least one batch receives per-object lighting.
	GeometryLit
	// GeometryForwardLit means at least one batch is drawn by a per-light forward pass.
	GeometryForwardLit
)

// Has reports whether every bit of other is set.
func (f GeometryRenderFlag) Has(other GeometryRenderFlag) bool {
	return f&other == other
}
