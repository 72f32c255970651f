package components

import (
	"fmt"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

// Button is a Vaadin button. Its caption lives in a nested span.
type Button struct {
	base
}

var _ interfaces.Button = (*Button)(nil)

func NewButton(d interfaces.Driver, loc by.Locator) *Button {
	b := &Button{base: newBase(d, loc)}
	b.tr = captionOf(b.captionElement(), b.base.translate)
	return b
}

func (b *Button) captionElement() interfaces.ElementHandle {
	return b.part(by.ClassName(ButtonCaptionClass))
}

func (b *Button) Caption() (string, error) {
	return b.captionElement().Text()
}

// Click clicks the button once it is visible and not disabled
func (b *Button) Click() (interfaces.Button, error) {
	if err := clickable(b.impl); err != nil {
		return b, fmt.Errorf("failed to click %s: %w", by.Format(b.by), err)
	}
	return b, nil
}

// PopupButton opens a popup with a list of option buttons
type PopupButton struct {
	base
}

var _ interfaces.PopupButton = (*PopupButton)(nil)

func NewPopupButton(d interfaces.Driver, loc by.Locator) *PopupButton {
	p := &PopupButton{base: newBase(d, loc)}
	p.tr = captionOf(p.part(by.ClassName(ButtonCaptionClass)), p.base.translate)
	return p
}

// Click opens the popup and selects option
func (p *PopupButton) Click(option string) (interfaces.PopupButton, error) {
	content, err := p.OpenPopupContent()
	if err != nil {
		return p, err
	}
	return p, content.Select(option)
}

func (p *PopupButton) OpenPopupContent() (interfaces.PopupContent, error) {
	if err := clickable(p.impl); err != nil {
		return nil, fmt.Errorf("failed to open popup of %s: %w", by.Format(p.by), err)
	}
	return p.PopupContent()
}

// PopupContent returns the opened popup, waiting until it is visible
func (p *PopupButton) PopupContent() (interfaces.PopupContent, error) {
	content := NewPopupContent(p.d, p)
	if err := content.impl.WaitFor(entities.Visible); err != nil {
		return nil, fmt.Errorf("popup of %s is not shown: %w", by.Format(p.by), err)
	}
	return content, nil
}

// PopupContent is the option list of an opened PopupButton. The popup is
// attached to the document body, not to the button.
type PopupContent struct {
	by     by.Locator
	impl   interfaces.ElementHandle
	d      interfaces.Driver
	parent interfaces.Component
}

var (
	_ interfaces.PopupContent = (*PopupContent)(nil)
	_ interfaces.Element      = (*PopupContent)(nil)
)

func NewPopupContent(d interfaces.Driver, parent interfaces.Component) *PopupContent {
	loc := by.CSS(PopupContentCSS)
	return &PopupContent{by: loc, impl: d.Find(loc), d: d, parent: parent}
}

func (c *PopupContent) By() by.Locator                     { return c.by }
func (c *PopupContent) Delegate() interfaces.ElementHandle { return c.impl }
func (c *PopupContent) Parent() interfaces.Component       { return c.parent }
func (c *PopupContent) LoggingID() string                  { return "popupContent" }

// Select clicks the option button whose caption is option
func (c *PopupContent) Select(option string) error {
	label := c.d.Find(by.Chained(c.by, by.TagName("span"), by.Text(option)))
	if err := clickable(label.Parent().Parent()); err != nil {
		return fmt.Errorf("failed to select %q: %w", option, err)
	}
	return nil
}

// Options returns the option captions in display order
func (c *PopupContent) Options() ([]string, error) {
	captions, err := c.d.FindAll(by.Chained(c.by, by.TagName("span"), by.ClassName(ButtonCaptionClass)))
	if err != nil {
		return nil, err
	}
	return texts(captions)
}

func texts(handles []interfaces.ElementHandle) ([]string, error) {
	out := make([]string, 0, len(handles))
	for _, h := range handles {
		text, err := h.Text()
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}
