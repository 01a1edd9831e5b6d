// Package runtime executes parsed commands: it owns the shape registry, the
// dispatcher that routes commands to handlers, and the batch execution of
// script files. It emits rendering instructions through a Renderer but never
// touches a display itself.
package runtime

import (
	"sort"
	"sync"

	"github.com/objectdraw/objectdraw/shapes"
)

// Registry is the identity-keyed store of every shape created in the current
// session. Names are unique; the dispatcher checks uniqueness before calling
// Add. Commands execute on a single logical thread, but the mutex lets
// concurrent hosts (a REPL completer, a future server front end) read safely.
type Registry struct {
	mu    sync.RWMutex
	items map[string]shapes.Shape
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]shapes.Shape)}
}

// Contains reports whether a shape with the given name exists.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[name]
	return ok
}

// Add stores a shape under its name. The caller must have established that
// the name is not already present; uniqueness is not re-checked here.
func (r *Registry) Add(name string, s shapes.Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = s
}

// Get retrieves a shape by name. A miss is an ordinary absent result, never
// an error.
func (r *Registry) Get(name string) (shapes.Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[name]
	return s, ok
}

// Names returns the registered shape names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered shapes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
