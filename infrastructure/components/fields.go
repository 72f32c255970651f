package components

import (
	"fmt"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

// input is the shared behaviour of text inputs
type input struct {
	base
}

func (i *input) setValue(value string) error {
	if err := i.impl.WaitFor(entities.Visible); err != nil {
		return err
	}
	if err := i.impl.WaitFor(entities.Editable); err != nil {
		return err
	}
	if err := i.impl.SetValue(value); err != nil {
		return fmt.Errorf("failed to set value of %s: %w", by.Format(i.by), err)
	}
	return nil
}

func (i *input) Value() (string, error) {
	return i.impl.Value()
}

type TextField struct {
	input
}

var _ interfaces.TextField = (*TextField)(nil)

func NewTextField(d interfaces.Driver, loc by.Locator) *TextField {
	return &TextField{input{base: newBase(d, loc)}}
}

func (t *TextField) SetValue(value string) (interfaces.TextField, error) {
	return t, t.setValue(value)
}

type PasswordField struct {
	input
}

var _ interfaces.PasswordField = (*PasswordField)(nil)

func NewPasswordField(d interfaces.Driver, loc by.Locator) *PasswordField {
	return &PasswordField{input{base: newBase(d, loc)}}
}

func (p *PasswordField) SetValue(value string) (interfaces.PasswordField, error) {
	return p, p.setValue(value)
}

// LookupField is an input with a suggestion popup. Setting a value picks
// the matching suggestion when one is shown.
type LookupField struct {
	base
	input interfaces.ElementHandle
}

var _ interfaces.LookupField = (*LookupField)(nil)

func NewLookupField(d interfaces.Driver, loc by.Locator) *LookupField {
	l := &LookupField{base: newBase(d, loc)}
	l.input = l.part(by.TagName("input"))
	l.tr = func(c entities.Condition) (interfaces.ElementHandle, entities.Condition) {
		switch c.Name {
		case entities.CondValue, entities.CondEditable:
			return l.input, c
		}
		return l.base.translate(c)
	}
	return l
}

func (l *LookupField) SetValue(value string) (interfaces.LookupField, error) {
	if err := l.input.WaitFor(entities.Editable); err != nil {
		return l, fmt.Errorf("failed to set value of %s: %w", by.Format(l.by), err)
	}
	if err := l.input.SetValue(value); err != nil {
		return l, fmt.Errorf("failed to set value of %s: %w", by.Format(l.by), err)
	}

	option := l.d.Find(by.Chained(by.CSS(SuggestPopupCSS), by.Text(value)))
	if ok, err := option.Matches(entities.Visible); err == nil && ok {
		if err := option.Click(); err != nil {
			return l, fmt.Errorf("failed to pick %q in %s: %w", value, by.Format(l.by), err)
		}
	}
	return l, nil
}

func (l *LookupField) Value() (string, error) {
	return l.input.Value()
}

// CheckBox wraps the input and label Vaadin renders inside a span
type CheckBox struct {
	base
	input interfaces.ElementHandle
	label interfaces.ElementHandle
}

var _ interfaces.CheckBox = (*CheckBox)(nil)

func NewCheckBox(d interfaces.Driver, loc by.Locator) *CheckBox {
	cb := &CheckBox{base: newBase(d, loc)}
	cb.input = cb.part(by.TagName("input"))
	cb.label = cb.part(by.TagName("label"))
	cb.tr = captionOf(cb.label, func(c entities.Condition) (interfaces.ElementHandle, entities.Condition) {
		if c.Name == entities.CondChecked {
			return cb.input, c
		}
		return cb.base.translate(c)
	})
	return cb
}

func (cb *CheckBox) Checked() (bool, error) {
	return cb.input.Matches(entities.Checked)
}

// SetChecked clicks the box when its state differs from checked
func (cb *CheckBox) SetChecked(checked bool) (interfaces.CheckBox, error) {
	current, err := cb.Checked()
	if err != nil {
		return cb, err
	}
	if current == checked {
		return cb, nil
	}
	if err := clickable(cb.input); err != nil {
		return cb, fmt.Errorf("failed to check %s: %w", by.Format(cb.by), err)
	}
	return cb, nil
}

func (cb *CheckBox) Caption() (string, error) {
	return cb.label.Text()
}

// Label is read-only text. Its value is its text.
type Label struct {
	base
}

var _ interfaces.Label = (*Label)(nil)

func NewLabel(d interfaces.Driver, loc by.Locator) *Label {
	l := &Label{base: newBase(d, loc)}
	l.tr = func(c entities.Condition) (interfaces.ElementHandle, entities.Condition) {
		if c.Name == entities.CondValue {
			hc := entities.ExactText(c.Value)
			hc.Negate = c.Negate
			return l.impl, hc
		}
		return l.base.translate(c)
	}
	return l
}

func (l *Label) Value() (string, error) {
	return l.impl.Text()
}
