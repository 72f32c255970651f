package wiring

import (
	"fmt"
	"reflect"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

var (
	locatorType       = reflect.TypeFor[by.Locator]()
	elementHandleType = reflect.TypeFor[interfaces.ElementHandle]()
	pathHintType      = reflect.TypeFor[interfaces.PathHint]()
)

// Wire resolves contract T. The target is either a by.Locator, an
// interfaces.ElementHandle or path segments; with no target the type's
// PathHint or the document root is used.
func Wire[T any](c *Components, target ...any) (T, error) {
	var zero T
	v, err := c.WireType(reflect.TypeFor[T](), target...)
	if err != nil {
		return zero, err
	}
	return cast[T](v)
}

// S is short for Wire
func S[T any](c *Components, target ...any) (T, error) {
	return Wire[T](c, target...)
}

// WirePath resolves T at the cuba-id path
func WirePath[T any](c *Components, path ...string) (T, error) {
	return WireBy[T](c, by.Path(path...))
}

// WireBy resolves T at loc
func WireBy[T any](c *Components, loc by.Locator) (T, error) {
	var zero T
	v, err := c.WireAt(reflect.TypeFor[T](), loc)
	if err != nil {
		return zero, err
	}
	return cast[T](v)
}

// WireTarget resolves T around an already found element
func WireTarget[T any](c *Components, h interfaces.ElementHandle) (T, error) {
	if h == nil {
		var zero T
		return zero, fmt.Errorf("failed to wire %s: %w", reflect.TypeFor[T](), entities.ErrNilLocator)
	}
	return WireBy[T](c, by.Target(h))
}

// MustWire is Wire panicking on error
func MustWire[T any](c *Components, target ...any) T {
	v, err := Wire[T](c, target...)
	if err != nil {
		panic(err)
	}
	return v
}

// WireName resolves the registered contract called name
func (c *Components) WireName(name string, target ...any) (any, error) {
	t, ok := c.registry.LookupName(name)
	if !ok {
		return nil, fmt.Errorf("unknown component %q", name)
	}
	return c.WireType(t, target...)
}

// WireType resolves t at the locator derived from target
func (c *Components) WireType(t reflect.Type, target ...any) (any, error) {
	if t == nil {
		return nil, entities.ErrNilContract
	}
	loc, err := locate(t, target)
	if err != nil {
		return nil, fmt.Errorf("failed to wire %s: %w", t, err)
	}
	return c.WireAt(t, loc)
}

// WireAt resolves t at loc. Registered contracts are built by their factory
// and instrumented; anything else is instantiated as a composite.
func (c *Components) WireAt(t reflect.Type, loc by.Locator) (any, error) {
	if t == nil {
		return nil, entities.ErrNilContract
	}
	if loc == nil {
		return nil, fmt.Errorf("failed to wire %s: %w", t, entities.ErrNilLocator)
	}

	if factory, ok := c.registry.Lookup(t); ok {
		v := factory(loc)
		if v == nil || !reflect.TypeOf(v).AssignableTo(t) {
			return nil, &entities.ConfigurationError{
				Contract: t.String(),
				Reason:   fmt.Sprintf("factory returned %T", v),
			}
		}
		c.log.WithField("locator", loc.String()).Debugf("Wiring %s", t)
		return c.proxies.Proxy(t, v), nil
	}

	return c.compose(t, loc)
}

func locate(t reflect.Type, target []any) (by.Locator, error) {
	var segments []string
	for _, arg := range target {
		switch v := arg.(type) {
		case by.Locator:
			return v, nil
		case interfaces.ElementHandle:
			return by.Target(v), nil
		case string:
			segments = append(segments, v)
		case []string:
			segments = append(segments, v...)
		default:
			return nil, fmt.Errorf("%w: %T", entities.ErrUnsupportedTarget, arg)
		}
	}
	if len(segments) > 0 {
		return by.Path(segments...), nil
	}
	if hint := pathHint(t); len(hint) > 0 {
		return by.Path(hint...), nil
	}
	return by.Root, nil
}

// pathHint asks a zero value of t for its default location
func pathHint(t reflect.Type) []string {
	var v reflect.Value
	switch {
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		v = reflect.New(t.Elem())
	case t.Kind() == reflect.Struct:
		v = reflect.New(t)
	default:
		return nil
	}
	if !v.Type().Implements(pathHintType) {
		return nil
	}
	return v.Interface().(interfaces.PathHint).WirePath()
}

func cast[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, &entities.ConfigurationError{
			Contract: reflect.TypeFor[T]().String(),
			Reason:   fmt.Sprintf("resolved to %T", v),
		}
	}
	return t, nil
}
