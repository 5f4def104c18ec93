package zone

import "github.com/go-gl/mathgl/mgl32"

// CachedZone is a drawable's memo of the zone it was last found in.
// The cache stays valid while the drawable is closer than the invalidation
// distance to the position where the lookup happened.
type CachedZone struct {
	Zone                             Zone
	CachePosition                    mgl32.Vec3
	CacheInvalidationDistanceSquared float32
}

// NewCachedZone returns an empty cache that is invalid at every position.
func NewCachedZone() CachedZone {
	return CachedZone{CacheInvalidationDistanceSquared: -1}
}

// IsValidAt reports whether the cached zone can still be used for position.
//
// Parameters:
//   - position: the drawable's current world-space center
//
// Returns:
//   - bool: true if the squared distance from the cache position is below the invalidation distance
func (c CachedZone) IsValidAt(position mgl32.Vec3) bool {
	return position.Sub(c.CachePosition).LenSqr() < c.CacheInvalidationDistanceSquared
}
