package scene

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-pipeline/engine/camera"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/global_illumination"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/light"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/spatial_index"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/zone"
)

// ErrNotFound is returned when an ID does not name a drawable in the scene.
var ErrNotFound = errors.New("scene: drawable not found")

// Scene owns a set of drawables (geometry and lights), the spatial index they are registered in,
// the zones that light them, an optional light probe set, and the camera they are viewed through.
// Scenes can be hot-swapped via the Active flag to switch between different views or levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new scene name
	SetName(name string)

	// Active returns whether the scene is active for rendering.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is active for rendering.
	//
	// Parameters:
	//   - active: true to activate
	SetActive(active bool)

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera (must not be nil)
	SetCamera(cam camera.Camera)

	// SpatialIndex returns the index every drawable of the scene is registered in.
	//
	// Returns:
	//   - spatial_index.SpatialIndex: the index
	SpatialIndex() spatial_index.SpatialIndex

	// GlobalIllumination returns the scene's light probes, or nil if the scene has none.
	//
	// Returns:
	//   - global_illumination.GlobalIllumination: the probe set or nil
	GlobalIllumination() global_illumination.GlobalIllumination

	// SetGlobalIllumination sets the scene's light probes.
	//
	// Parameters:
	//   - gi: the probe set, nil to disable probe lighting
	SetGlobalIllumination(gi global_illumination.GlobalIllumination)

	// Add registers a drawable with the scene and its spatial index. Drawables without an ID
	// are assigned one. Blocks while a frame is being processed.
	//
	// Parameters:
	//   - d: the drawable to add
	//
	// Returns:
	//   - uint64: the drawable ID
	Add(d drawable.Drawable) uint64

	// Get returns the drawable with the given ID, or nil.
	//
	// Parameters:
	//   - id: the drawable ID
	//
	// Returns:
	//   - drawable.Drawable: the drawable or nil
	Get(id uint64) drawable.Drawable

	// Remove unregisters a drawable. Blocks while a frame is being processed.
	//
	// Parameters:
	//   - id: the drawable ID
	//
	// Returns:
	//   - error: ErrNotFound if no drawable has that ID
	Remove(id uint64) error

	// Lights returns every light drawable in the scene.
	//
	// Returns:
	//   - []light.Light: the lights
	Lights() []light.Light

	// AddZone registers a zone with the spatial index.
	//
	// Parameters:
	//   - z: the zone
	AddZone(z zone.Zone)

	// Count returns the number of drawables in the scene.
	//
	// Returns:
	//   - int: the drawable count
	Count() int

	// Clear removes every drawable from the scene. Zones are kept.
	Clear()

	// Freeze runs fn while drawables cannot be added or removed, so dense drawable indices
	// stay stable for the duration of a frame.
	//
	// Parameters:
	//   - fn: the frame body
	Freeze(fn func())
}

type scene struct {
	mu *sync.RWMutex
	// frameMu is held for reading by Freeze and for writing by structural changes.
	frameMu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]drawable.Drawable
	lights   []light.Light
	nextID   uint64

	cam   camera.Camera
	index spatial_index.SpatialIndex
	gi    global_illumination.GlobalIllumination

	pendingDrawables []drawable.Drawable
	pendingZones     []zone.Zone
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera. NewScene panics if the camera is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:       &sync.RWMutex{},
		frameMu:  &sync.RWMutex{},
		name:     name,
		active:   false,
		cam:      cam,
		registry: make(map[uint64]drawable.Drawable),
		nextID:   1,
	}

	for _, option := range options {
		option(s)
	}
	if s.index == nil {
		s.index = spatial_index.NewSpatialIndex()
	}
	for _, z := range s.pendingZones {
		s.index.AddZone(z)
	}
	for _, d := range s.pendingDrawables {
		s.Add(d)
	}
	s.pendingZones, s.pendingDrawables = nil, nil

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	if cam == nil {
		panic("scene: SetCamera requires a non-nil Camera")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) SpatialIndex() spatial_index.SpatialIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

func (s *scene) GlobalIllumination() global_illumination.GlobalIllumination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gi
}

func (s *scene) SetGlobalIllumination(gi global_illumination.GlobalIllumination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gi = gi
}

func (s *scene) Add(d drawable.Drawable) uint64 {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID() == 0 {
		d.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
	}
	if _, exists := s.registry[d.ID()]; exists {
		return d.ID()
	}
	s.registry[d.ID()] = d
	s.index.AddDrawable(d)

	if l, ok := d.(light.Light); ok {
		s.lights = append(s.lights, l)
	}
	return d.ID()
}

func (s *scene) Get(id uint64) drawable.Drawable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) error {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	d, exists := s.registry[id]
	if !exists {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	delete(s.registry, id)

	if l, ok := d.(light.Light); ok {
		for i, existing := range s.lights {
			if existing == l {
				s.lights = append(s.lights[:i], s.lights[i+1:]...)
				break
			}
		}
	}

	if err := s.index.RemoveDrawable(d); err != nil {
		return fmt.Errorf("remove %d: %w", id, err)
	}
	return nil
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) AddZone(z zone.Zone) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.index.AddZone(z)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Clear() {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.registry {
		_ = s.index.RemoveDrawable(d)
	}
	s.registry = make(map[uint64]drawable.Drawable)
	s.lights = nil
}

func (s *scene) Freeze(fn func()) {
	s.frameMu.RLock()
	defer s.frameMu.RUnlock()
	fn()
}
