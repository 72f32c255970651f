package proxy

import (
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"

	"masquerade/domain/interfaces"
)

var wrapperType = reflect.TypeFor[interfaces.Wrapper]()

// Constructor builds the wrapper of one contract around a handler
type Constructor func(h *Handler, target any) any

// Factory creates proxies for contract types it has constructors for
type Factory struct {
	log   logrus.FieldLogger
	mu    sync.RWMutex
	ctors map[reflect.Type]Constructor
}

// NewFactory returns a factory knowing every built-in contract
func NewFactory(log logrus.FieldLogger) *Factory {
	if log == nil {
		log = logrus.StandardLogger()
	}
	f := &Factory{
		log:   log,
		ctors: make(map[reflect.Type]Constructor),
	}
	registerBuiltins(f)
	return f
}

// Register adds or replaces the wrapper constructor of contract T
func Register[T any](f *Factory, ctor func(h *Handler, target T) T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ctors[reflect.TypeFor[T]()] = func(h *Handler, target any) any {
		return ctor(h, target.(T))
	}
}

// Supports reports whether contract t has a wrapper
func (f *Factory) Supports(t reflect.Type) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.ctors[t]
	return ok
}

// Proxy wraps target as contract t with the element re-wrapping rule.
// Contracts without a wrapper get the target back unchanged.
func (f *Factory) Proxy(t reflect.Type, target any) any {
	return f.ProxyWith(t, target, f.Rewrap)
}

// ProxyWith wraps target as contract t with a custom re-wrapping rule
func (f *Factory) ProxyWith(t reflect.Type, target any, rule RewrapRule) any {
	f.mu.RLock()
	ctor, ok := f.ctors[t]
	f.mu.RUnlock()

	if !ok || isNil(target) || !reflect.TypeOf(target).AssignableTo(t) {
		f.log.Debugf("No instrumentation for %s, returning %T as is", t, target)
		return target
	}
	return ctor(NewHandler(f.log, t, target, rule), target)
}

// Rewrap is the default rule: results declared as an interface of the
// element family are proxied again, anything else passes through.
func (f *Factory) Rewrap(declared reflect.Type, value any) any {
	if declared.Kind() == reflect.Interface && declared.Implements(wrapperType) {
		return f.Proxy(declared, value)
	}
	return value
}
