package wiring

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"masquerade/domain/interfaces"
)

// Registry maps contract types to the factories building them
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]interfaces.Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[reflect.Type]interfaces.Factory),
	}
}

// Register adds or replaces the factory of t. The factory output is not
// checked against t until the contract is wired.
func (r *Registry) Register(t reflect.Type, factory interfaces.Factory) {
	if t == nil || factory == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[t] = factory
}

// Merge copies every entry of m into the registry, overwriting existing ones
func (r *Registry) Merge(m map[reflect.Type]interfaces.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for t, f := range m {
		if t == nil || f == nil {
			continue
		}
		r.factories[t] = f
	}
}

// Lookup returns the factory registered for t
func (r *Registry) Lookup(t reflect.Type) (interfaces.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[t]
	return f, ok
}

// LookupName finds a registered type by its name ("Button") or qualified
// name ("interfaces.Button"), ignoring case.
func (r *Registry) LookupName(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for t := range r.factories {
		if strings.EqualFold(t.Name(), name) || strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return nil, false
}

// Types lists registered types sorted by qualified name
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	types := make([]reflect.Type, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	r.mu.RUnlock()

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

// Len returns the number of registered types
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
