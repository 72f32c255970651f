// Package components implements the component contracts for Vaadin based
// CUBA screens.
package components

import (
	"fmt"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

// Vaadin class names and selectors
const (
	DisabledClass      = "v-disabled"
	ButtonCaptionClass = "v-button-caption"
	PanelCaptionClass  = "v-panel-caption"
	TableBodyClass     = "v-table-body"
	TableRowCSS        = "tr.v-table-row, tr.v-table-row-odd"
	SelectedRowClass   = "v-selected"
	SuggestPopupCSS    = "div.v-filterselect-suggestpopup"
	PopupContentCSS    = "div.v-popupbutton-popup"
)

var notDisabled = entities.Not(entities.CSSClass(DisabledClass))

// translator maps a component condition to the element and element
// condition that decide it
type translator func(c entities.Condition) (interfaces.ElementHandle, entities.Condition)

type base struct {
	by   by.Locator
	impl interfaces.ElementHandle
	d    interfaces.Driver
	tr   translator
}

func newBase(d interfaces.Driver, loc by.Locator) base {
	return base{by: loc, impl: d.Find(loc), d: d}
}

func (b *base) translator() translator {
	if b.tr != nil {
		return b.tr
	}
	return b.translate
}

func (b *base) By() by.Locator {
	return b.by
}

func (b *base) Delegate() interfaces.ElementHandle {
	return b.impl
}

func (b *base) String() string {
	return b.by.String()
}

// part returns a handle for an element inside the component
func (b *base) part(loc by.Locator) interfaces.ElementHandle {
	return b.impl.Find(loc)
}

// translate is the rule shared by all components: enabled means the
// element lacks the Vaadin disabled class.
func (b *base) translate(c entities.Condition) (interfaces.ElementHandle, entities.Condition) {
	if c.Name == entities.CondEnabled {
		if c.Negate {
			return b.impl, entities.Not(notDisabled)
		}
		return b.impl, notDisabled
	}
	return b.impl, c
}

// Is checks a state condition once
func (b *base) Is(c entities.Condition) (bool, error) {
	h, hc := b.translator()(c)
	return h.Matches(hc)
}

// Has checks a property condition once
func (b *base) Has(c entities.Condition) (bool, error) {
	return b.Is(c)
}

// should waits for every condition, inverted when negate is set
func (b *base) should(negate bool, conditions []entities.Condition) error {
	for _, c := range conditions {
		if negate {
			c = entities.Not(c)
		}
		h, hc := b.translator()(c)
		if err := h.WaitFor(hc); err != nil {
			return fmt.Errorf("%s should be %s: %w", by.Format(b.by), c, err)
		}
	}
	return nil
}

// clickable waits until the element is visible and enabled, then clicks
func clickable(h interfaces.ElementHandle) error {
	if err := h.WaitFor(entities.Visible); err != nil {
		return err
	}
	if err := h.WaitFor(notDisabled); err != nil {
		return err
	}
	return h.Click()
}

// captionOf translates caption conditions to the exact text of part
func captionOf(part interfaces.ElementHandle, next translator) translator {
	return func(c entities.Condition) (interfaces.ElementHandle, entities.Condition) {
		if c.Name == entities.CondCaption {
			hc := entities.ExactText(c.Value)
			if c.Negate {
				hc = entities.Not(hc)
			}
			return part, hc
		}
		return next(c)
	}
}
