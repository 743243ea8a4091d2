// Package registry is the mode registry contract (spec.md §6): resolving
// a nesting.ModeSpec by name to a concrete nesting.Mode, the way
// highlighter.ThemeByName resolves a theme name to a concrete *Theme.
package registry

import (
	"fmt"
	"sync"

	"github.com/lasseh/nestjink/nesting"
)

// Factory builds a nesting.Mode from a ModeSpec's options. Implementations
// must be side-effect free except for the registry's own caching.
type Factory func(opts map[string]any) (nesting.Mode, error)

// Registry is a name -> Factory table with per-instance caching keyed on
// the spec name (options are assumed stable per name in this product;
// a registry that needs option-sensitive caching can key on name+opts
// instead).
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	cache     map[string]nesting.Mode
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		cache:     make(map[string]nesting.Mode),
	}
}

// Register associates name with a Factory. Re-registering a name
// overwrites the previous Factory and evicts any cached Mode for it.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
	delete(r.cache, name)
}

// Resolve implements nesting.Resolver.
func (r *Registry) Resolve(spec nesting.ModeSpec) (nesting.Mode, error) {
	r.mu.RLock()
	if mode, ok := r.cache[spec.Name]; ok {
		r.mu.RUnlock()
		return mode, nil
	}
	factory, ok := r.factories[spec.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: no mode registered for %q", spec.Name)
	}

	mode, err := factory(spec.Options)
	if err != nil {
		return nil, fmt.Errorf("registry: building mode %q: %w", spec.Name, err)
	}

	r.mu.Lock()
	r.cache[spec.Name] = mode
	r.mu.Unlock()
	return mode, nil
}
