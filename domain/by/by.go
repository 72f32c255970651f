// Package by builds locators: immutable values naming a region of a live
// document. Locators carry no resolution state; driver adapters resolve them
// at the point of use.
package by

import (
	"fmt"
	"strings"
)

// Locator identifies a region of a live document
type Locator interface {
	String() string
	locator()
}

// Strategy is the selector language of a Simple locator
type Strategy string

const (
	StrategyCubaID    Strategy = "cuba-id"
	StrategyCSS       Strategy = "css"
	StrategyXPath     Strategy = "xpath"
	StrategyID        Strategy = "id"
	StrategyClassName Strategy = "class"
	StrategyTagName   Strategy = "tag"
	StrategyName      Strategy = "name"
	StrategyLinkText  Strategy = "link"
	StrategyText      Strategy = "text"
)

// Simple is a single selector in one strategy
type Simple struct {
	Strategy Strategy
	Value    string
}

func (Simple) locator() {}

func (s Simple) String() string {
	return fmt.Sprintf("%s: %s", s.Strategy, s.Value)
}

// Chain is an ordered "find within find" sequence. It never contains
// another Chain.
type Chain struct {
	parts []Locator
}

func (Chain) locator() {}

// Parts returns a copy of the chain segments
func (c Chain) Parts() []Locator {
	parts := make([]Locator, len(c.parts))
	copy(parts, c.parts)
	return parts
}

// Last returns the terminal segment
func (c Chain) Last() Locator {
	if len(c.parts) == 0 {
		return nil
	}
	return c.parts[len(c.parts)-1]
}

func (c Chain) String() string {
	parts := make([]string, 0, len(c.parts))
	for _, p := range c.parts {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " > ")
}

// Handle wraps an element that was already resolved by a driver
type Handle struct {
	target any
}

func (Handle) locator() {}

// Target returns the wrapped element
func (h Handle) Target() any {
	return h.target
}

func (h Handle) String() string {
	if s, ok := h.target.(fmt.Stringer); ok {
		return "target: " + s.String()
	}
	return fmt.Sprintf("target: %T", h.target)
}

// Document marks the document root
type Document struct{}

func (Document) locator() {}

func (Document) String() string {
	return "tag: body"
}

// Root is the document-root marker locator
var Root Locator = Document{}

// IsRoot reports whether l is the document-root marker
func IsRoot(l Locator) bool {
	_, ok := l.(Document)
	return ok
}

// CubaID selects an element by its cuba-id attribute
func CubaID(id string) Simple { return Simple{Strategy: StrategyCubaID, Value: id} }

// CSS selects by css selector
func CSS(selector string) Simple { return Simple{Strategy: StrategyCSS, Value: selector} }

// XPath selects by xpath expression
func XPath(expr string) Simple { return Simple{Strategy: StrategyXPath, Value: expr} }

// ID selects by id attribute
func ID(id string) Simple { return Simple{Strategy: StrategyID, Value: id} }

// ClassName selects by a single css class
func ClassName(name string) Simple { return Simple{Strategy: StrategyClassName, Value: name} }

// TagName selects by tag name
func TagName(name string) Simple { return Simple{Strategy: StrategyTagName, Value: name} }

// Name selects by name attribute
func Name(name string) Simple { return Simple{Strategy: StrategyName, Value: name} }

// LinkText selects a link by its exact text
func LinkText(text string) Simple { return Simple{Strategy: StrategyLinkText, Value: text} }

// Text selects an element by its exact visible text
func Text(text string) Simple { return Simple{Strategy: StrategyText, Value: text} }

// Path builds a locator from cuba-id path segments. No segments gives Root.
func Path(segments ...string) Locator {
	switch len(segments) {
	case 0:
		return Root
	case 1:
		return CubaID(segments[0])
	}
	parts := make([]Locator, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, CubaID(s))
	}
	return Chain{parts: parts}
}

// Chained nests children under parent. Nested chains are flattened.
func Chained(parent Locator, children ...Locator) Locator {
	if len(children) == 0 {
		return parent
	}
	parts := flatten(nil, parent)
	for _, c := range children {
		parts = flatten(parts, c)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return Chain{parts: parts}
}

func flatten(dst []Locator, l Locator) []Locator {
	if c, ok := l.(Chain); ok {
		return append(dst, c.parts...)
	}
	if l == nil {
		return dst
	}
	return append(dst, l)
}

// Target wraps an already resolved element handle
func Target(handle any) Locator {
	return Handle{target: handle}
}

// Format renders the locator for diagnostics: the terminal segment of a
// chain, the bare id of a cuba-id selector, String() otherwise.
func Format(l Locator) string {
	switch v := l.(type) {
	case nil:
		return ""
	case Chain:
		return Format(v.Last())
	case Simple:
		if v.Strategy == StrategyCubaID {
			return v.Value
		}
	}
	return l.String()
}

// Parse reads a "strategy=value" find-by directive
func Parse(directive string) (Simple, error) {
	key, value, ok := strings.Cut(directive, "=")
	if !ok || strings.TrimSpace(value) == "" {
		return Simple{}, fmt.Errorf("invalid find-by directive %q: expected strategy=value", directive)
	}
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "css", "cssselector":
		return CSS(value), nil
	case "xpath":
		return XPath(value), nil
	case "id":
		return ID(value), nil
	case "class", "classname":
		return ClassName(value), nil
	case "tag", "tagname":
		return TagName(value), nil
	case "name":
		return Name(value), nil
	case "link", "linktext":
		return LinkText(value), nil
	case "text":
		return Text(value), nil
	case "cuba", "cuba-id", "cubaid":
		return CubaID(value), nil
	}
	return Simple{}, fmt.Errorf("invalid find-by directive %q: unknown strategy %q", directive, key)
}
