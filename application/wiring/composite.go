package wiring

import (
	"errors"

	"masquerade/domain/by"
	"masquerade/domain/interfaces"
)

var errNotWired = errors.New("composite was not wired")

// Composite is embedded by page objects. The wiring resolver fills its
// locator, element handle and wiring context.
type Composite struct {
	by   by.Locator               `wire:""`
	impl interfaces.ElementHandle `wire:""`
	c    *Components              `wire:""`
}

// Compound is implemented by every struct embedding Composite
type Compound interface {
	interfaces.Wrapper
	composite() Composite
}

func (c Composite) composite() Composite { return c }

// By returns the locator of the composite
func (c Composite) By() by.Locator {
	return c.by
}

// Delegate returns the element handle of the composite
func (c Composite) Delegate() interfaces.ElementHandle {
	return c.impl
}

// Components returns the context the composite was wired with
func (c Composite) Components() *Components {
	return c.c
}

// Child wires T at the path below parent. Without a path it is ActAs.
func Child[T any](parent Compound, path ...string) (T, error) {
	if len(path) == 0 {
		return ActAs[T](parent)
	}
	base := parent.composite()
	if base.c == nil || base.by == nil {
		var zero T
		return zero, errNotWired
	}
	return WireBy[T](base.c, child(base.by, by.Path(path...)))
}

// ActAs wires T at the same location as parent
func ActAs[T any](parent Compound) (T, error) {
	base := parent.composite()
	if base.c == nil || base.by == nil {
		var zero T
		return zero, errNotWired
	}
	return WireBy[T](base.c, base.by)
}
