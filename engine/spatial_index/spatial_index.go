package spatial_index

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/zone"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrDrawableNotRegistered is returned when removing a drawable the index does not hold.
	ErrDrawableNotRegistered = errors.New("drawable not registered")
	// ErrZoneNotRegistered is returned when removing a zone the index does not hold.
	ErrZoneNotRegistered = errors.New("zone not registered")
)

type spatialIndex struct {
	mu sync.RWMutex

	drawables   []drawable.Drawable
	zones       []zone.Zone
	defaultZone zone.Zone
}

// SpatialIndex holds every drawable of a scene under a dense index and answers visibility and zone queries.
//
// Indices run from 0 to NumDrawables()-1 with no gaps. Removing a drawable moves the last drawable into
// the freed slot and updates its DrawableIndex. Queries take a read lock and may run from worker goroutines;
// registration takes the write lock and must not overlap a frame that is indexing per-drawable arrays.
type SpatialIndex interface {
	// AddDrawable registers a drawable and assigns it the next dense index.
	//
	// Parameters:
	//   - d: the drawable to register
	//
	// Returns:
	//   - int: the assigned index
	AddDrawable(d drawable.Drawable) int

	// RemoveDrawable unregisters a drawable and compacts the index.
	//
	// Parameters:
	//   - d: the drawable to remove
	//
	// Returns:
	//   - error: ErrDrawableNotRegistered if d is not in this index
	RemoveDrawable(d drawable.Drawable) error

	// AllDrawables returns a snapshot of every registered drawable in index order.
	//
	// Returns:
	//   - []drawable.Drawable: the drawables
	AllDrawables() []drawable.Drawable

	// NumDrawables returns the number of registered drawables, one past the highest index.
	//
	// Returns:
	//   - int: the drawable count
	NumDrawables() int

	// QueryDrawables returns enabled drawables matching flags and viewMask whose world bounds intersect the frustum.
	//
	// Parameters:
	//   - frustum: the world-space frustum
	//   - flags: drawable classes to include
	//   - viewMask: the camera view mask
	//
	// Returns:
	//   - []drawable.Drawable: matching drawables in index order
	QueryDrawables(frustum common.Frustum, flags drawable.DrawableFlags, viewMask uint32) []drawable.Drawable

	// AddZone registers a zone.
	//
	// Parameters:
	//   - z: the zone
	AddZone(z zone.Zone)

	// RemoveZone unregisters a zone.
	//
	// Parameters:
	//   - z: the zone
	//
	// Returns:
	//   - error: ErrZoneNotRegistered if z is not in this index
	RemoveZone(z zone.Zone) error

	Zones() []zone.Zone
	DefaultZone() zone.Zone
	SetDefaultZone(z zone.Zone)

	// QueryZone finds the highest-priority zone that contains position and matches zoneMask, falling back
	// to the default zone. The result stays valid until the querying drawable moves as far as the nearest
	// boundary of any matching zone.
	//
	// Parameters:
	//   - position: world-space point, usually a drawable's bounds center
	//   - zoneMask: the drawable's zone mask
	//
	// Returns:
	//   - zone.CachedZone: the zone plus its cache position and invalidation distance squared
	QueryZone(position mgl32.Vec3, zoneMask uint32) zone.CachedZone
}

var _ SpatialIndex = &spatialIndex{}

// NewSpatialIndex creates an empty index with a default zone covering all of space.
//
// Parameters:
//   - options: functional options to configure the index
//
// Returns:
//   - SpatialIndex: the new index
func NewSpatialIndex(options ...SpatialIndexBuilderOption) SpatialIndex {
	si := &spatialIndex{
		drawables: make([]drawable.Drawable, 0, 256),
	}
	for _, option := range options {
		option(si)
	}
	if si.defaultZone == nil {
		si.defaultZone = zone.NewZone(zone.WithName("default"), zone.WithPriority(-1<<31))
	}
	return si
}

func (si *spatialIndex) AddDrawable(d drawable.Drawable) int {
	si.mu.Lock()
	defer si.mu.Unlock()
	index := len(si.drawables)
	si.drawables = append(si.drawables, d)
	d.SetDrawableIndex(index)
	return index
}

func (si *spatialIndex) RemoveDrawable(d drawable.Drawable) error {
	si.mu.Lock()
	defer si.mu.Unlock()

	index := d.DrawableIndex()
	if index < 0 || index >= len(si.drawables) || si.drawables[index] != d {
		return fmt.Errorf("spatial_index: remove drawable %d: %w", d.ID(), ErrDrawableNotRegistered)
	}

	last := len(si.drawables) - 1
	if index != last {
		moved := si.drawables[last]
		si.drawables[index] = moved
		moved.SetDrawableIndex(index)
	}
	si.drawables[last] = nil
	si.drawables = si.drawables[:last]
	d.SetDrawableIndex(-1)
	return nil
}

func (si *spatialIndex) AllDrawables() []drawable.Drawable {
	si.mu.RLock()
	defer si.mu.RUnlock()
	out := make([]drawable.Drawable, len(si.drawables))
	copy(out, si.drawables)
	return out
}

func (si *spatialIndex) NumDrawables() int {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return len(si.drawables)
}

func (si *spatialIndex) QueryDrawables(frustum common.Frustum, flags drawable.DrawableFlags, viewMask uint32) []drawable.Drawable {
	si.mu.RLock()
	defer si.mu.RUnlock()

	out := make([]drawable.Drawable, 0, len(si.drawables))
	for _, d := range si.drawables {
		if d.Flags()&flags == 0 || d.ViewMask()&viewMask == 0 || !d.Enabled() {
			continue
		}
		if !frustum.IntersectsBox(d.WorldBoundingBox()) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (si *spatialIndex) AddZone(z zone.Zone) {
	si.mu.Lock()
	defer si.mu.Unlock()
	si.zones = append(si.zones, z)
}

func (si *spatialIndex) RemoveZone(z zone.Zone) error {
	si.mu.Lock()
	defer si.mu.Unlock()
	for i, existing := range si.zones {
		if existing == z {
			si.zones = append(si.zones[:i], si.zones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("spatial_index: remove zone %q: %w", z.Name(), ErrZoneNotRegistered)
}

func (si *spatialIndex) Zones() []zone.Zone {
	si.mu.RLock()
	defer si.mu.RUnlock()
	out := make([]zone.Zone, len(si.zones))
	copy(out, si.zones)
	return out
}

func (si *spatialIndex) DefaultZone() zone.Zone {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return si.defaultZone
}

func (si *spatialIndex) SetDefaultZone(z zone.Zone) {
	si.mu.Lock()
	defer si.mu.Unlock()
	si.defaultZone = z
}

func (si *spatialIndex) QueryZone(position mgl32.Vec3, zoneMask uint32) zone.CachedZone {
	si.mu.RLock()
	defer si.mu.RUnlock()

	var best zone.Zone
	minDistance := common.LargeValue
	for _, z := range si.zones {
		if z.ZoneMask()&zoneMask == 0 {
			continue
		}
		box := z.BoundingBox()
		minDistance = min(minDistance, box.DistanceToBoundary(position))
		if !box.IsInside(position) {
			continue
		}
		if best == nil || z.Priority() > best.Priority() {
			best = z
		}
	}
	if best == nil {
		best = si.defaultZone
	}

	return zone.CachedZone{
		Zone:                             best,
		CachePosition:                    position,
		CacheInvalidationDistanceSquared: minDistance * minDistance,
	}
}
