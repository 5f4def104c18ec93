package material

import (
	"strings"
	"sync"
)

// passRegistry assigns every pass name a process-wide index so passes can be looked up in
// techniques by integer rather than by string on the hot path.
var passRegistry = struct {
	mu      sync.RWMutex
	indices map[string]int
	names   []string
}{indices: make(map[string]int)}

// Predefined pass indices used by scene rendering passes.
var (
	BasePassIndex    = PassIndex("base")
	LitBasePassIndex = PassIndex("litbase")
	LightPassIndex   = PassIndex("light")
	ShadowPassIndex  = PassIndex("shadow")
)

// PassIndex returns the stable index for a pass name, registering it on first use.
// Names are case-insensitive.
//
// Parameters:
//   - name: the pass name
//
// Returns:
//   - int: the pass index
func PassIndex(name string) int {
	key := strings.ToLower(name)

	passRegistry.mu.RLock()
	index, ok := passRegistry.indices[key]
	passRegistry.mu.RUnlock()
	if ok {
		return index
	}

	passRegistry.mu.Lock()
	defer passRegistry.mu.Unlock()
	if index, ok := passRegistry.indices[key]; ok {
		return index
	}
	index = len(passRegistry.names)
	passRegistry.indices[key] = index
	passRegistry.names = append(passRegistry.names, key)
	return index
}

// PassName returns the registered name for a pass index, or "" if unknown.
func PassName(index int) string {
	passRegistry.mu.RLock()
	defer passRegistry.mu.RUnlock()
	if index < 0 || index >= len(passRegistry.names) {
		return ""
	}
	return passRegistry.names[index]
}

// Pass is one rendering pass of a technique.
type Pass struct {
	Name  string
	Index int
	// PipelineKey identifies the pipeline state a renderer would build for this pass.
	PipelineKey string
}
