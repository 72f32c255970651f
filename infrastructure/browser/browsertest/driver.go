// Package browsertest provides an in-memory browser for tests. Elements are
// keyed by locator; a Find for an unknown locator yields a hidden element.
package browsertest

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
	"masquerade/infrastructure/browser"
)

// ParentStep is the locator segment Parent appends
var ParentStep = by.XPath("..")

var (
	ErrNotVisible  = errors.New("element is not visible")
	ErrNotEditable = errors.New("element is not editable")
	ErrClosed      = errors.New("browser is closed")
)

// Driver is an in-memory interfaces.Browser
type Driver struct {
	mu       sync.Mutex
	elements map[string]*Element
	lists    map[string][]*Element
	finds    []by.Locator
	opened   []string
	closed   bool

	// Timeout bounds WaitFor, zero checks once
	Timeout time.Duration
}

var _ interfaces.Browser = (*Driver)(nil)

// NewDriver creates an empty document
func NewDriver() *Driver {
	return &Driver{
		elements: make(map[string]*Element),
		lists:    make(map[string][]*Element),
	}
}

// Element declares the element at loc. A new or previously undeclared
// element becomes visible, enabled and editable.
func (d *Driver) Element(loc by.Locator) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.element(loc, true)
}

func (d *Driver) element(loc by.Locator, present bool) *Element {
	key := loc.String()
	if el, ok := d.elements[key]; ok {
		if present && !el.declared {
			el.declared, el.visible, el.enabled, el.editable = true, true, true, true
		}
		return el
	}
	el := &Element{
		d:        d,
		loc:      loc,
		attrs:    make(map[string]string),
		declared: present,
		visible:  present,
		enabled:  present,
		editable: present,
	}
	d.elements[key] = el
	return el
}

// SetAll declares the elements FindAll returns for loc
func (d *Driver) SetAll(loc by.Locator, elements ...*Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lists[loc.String()] = elements
}

// Finds lists the locators passed to Find, in call order
func (d *Driver) Finds() []by.Locator {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]by.Locator, len(d.finds))
	copy(out, d.finds)
	return out
}

// Opened lists the URLs passed to Open
func (d *Driver) Opened() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.opened...)
}

// Closed reports whether Close was called
func (d *Driver) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *Driver) Open(url string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	d.opened = append(d.opened, url)
	return nil
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *Driver) Find(loc by.Locator) interfaces.ElementHandle {
	if h, ok := loc.(by.Handle); ok {
		if el, ok := h.Target().(interfaces.ElementHandle); ok {
			return el
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.finds = append(d.finds, loc)
	return d.element(loc, false)
}

func (d *Driver) FindAll(loc by.Locator) ([]interfaces.ElementHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := d.lists[loc.String()]
	out := make([]interfaces.ElementHandle, 0, len(list))
	for _, el := range list {
		out = append(out, el)
	}
	return out, nil
}

// Element is one scriptable element
type Element struct {
	d        *Driver
	loc      by.Locator
	declared bool
	text     string
	value    string
	attrs    map[string]string
	classes  []string
	visible  bool
	enabled  bool
	editable bool
	checked  bool
	clicks   int

	// OnClick runs after a successful click
	OnClick func(e *Element)
}

var _ interfaces.ElementHandle = (*Element)(nil)
var _ browser.Probe = (*Element)(nil)

func (e *Element) WithText(text string) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.text = text
	return e
}

func (e *Element) WithValue(value string) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.value = value
	return e
}

func (e *Element) WithAttr(name, value string) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.attrs[name] = value
	return e
}

// WithClass adds css classes
func (e *Element) WithClass(classes ...string) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.classes = append(e.classes, classes...)
	return e
}

// WithoutClass removes a css class
func (e *Element) WithoutClass(class string) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	kept := e.classes[:0]
	for _, c := range e.classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.classes = kept
	return e
}

func (e *Element) WithVisible(visible bool) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.visible = visible
	return e
}

func (e *Element) WithEnabled(enabled bool) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.enabled = enabled
	return e
}

func (e *Element) WithEditable(editable bool) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.editable = editable
	return e
}

func (e *Element) WithChecked(checked bool) *Element {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.checked = checked
	return e
}

// Clicks returns the number of successful clicks
func (e *Element) Clicks() int {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	return e.clicks
}

func (e *Element) String() string {
	return e.loc.String()
}

func (e *Element) Locator() by.Locator {
	return e.loc
}

func (e *Element) Find(loc by.Locator) interfaces.ElementHandle {
	return e.d.Find(by.Chained(e.loc, loc))
}

func (e *Element) FindAll(loc by.Locator) ([]interfaces.ElementHandle, error) {
	return e.d.FindAll(by.Chained(e.loc, loc))
}

// Parent returns the element at the locator extended by the xpath step
// "..", as the real drivers resolve it
func (e *Element) Parent() interfaces.ElementHandle {
	return e.Find(ParentStep)
}

func (e *Element) Click() error {
	e.d.mu.Lock()
	if !e.visible {
		e.d.mu.Unlock()
		return fmt.Errorf("click %s: %w", e.loc, ErrNotVisible)
	}
	e.clicks++
	onClick := e.OnClick
	e.d.mu.Unlock()

	if onClick != nil {
		onClick(e)
	}
	return nil
}

func (e *Element) Text() (string, error) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	return e.text, nil
}

func (e *Element) Value() (string, error) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	return e.value, nil
}

func (e *Element) SetValue(value string) error {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	if !e.visible || !e.enabled || !e.editable {
		return fmt.Errorf("set value of %s: %w", e.loc, ErrNotEditable)
	}
	e.value = value
	return nil
}

func (e *Element) Attribute(name string) (string, error) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	if name == "class" {
		return strings.Join(e.classes, " "), nil
	}
	return e.attrs[name], nil
}

func (e *Element) Visible() (bool, error) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	return e.visible, nil
}

func (e *Element) Enabled() (bool, error) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	return e.enabled, nil
}

func (e *Element) Editable() (bool, error) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	return e.enabled && e.editable, nil
}

func (e *Element) Checked() (bool, error) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	return e.checked, nil
}

func (e *Element) Matches(c entities.Condition) (bool, error) {
	return browser.Match(e, c)
}

func (e *Element) WaitFor(c entities.Condition) error {
	return browser.WaitFor(e, c, e.d.Timeout, time.Millisecond)
}
