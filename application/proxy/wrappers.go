package proxy

import (
	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

func registerBuiltins(f *Factory) {
	Register(f, func(h *Handler, t interfaces.Untyped) interfaces.Untyped {
		return &untypedProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.Button) interfaces.Button {
		return &buttonProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.TextField) interfaces.TextField {
		return &textFieldProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.PasswordField) interfaces.PasswordField {
		return &passwordFieldProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.CheckBox) interfaces.CheckBox {
		return &checkBoxProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.Label) interfaces.Label {
		return &labelProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.LookupField) interfaces.LookupField {
		return &lookupFieldProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.Table) interfaces.Table {
		return &tableProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.GroupBox) interfaces.GroupBox {
		return &groupBoxProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.PopupButton) interfaces.PopupButton {
		return &popupButtonProxy{component: component{h: h, target: t}, target: t}
	})
	Register(f, func(h *Handler, t interfaces.PopupContent) interfaces.PopupContent {
		return &popupContentProxy{h: h, target: t}
	})
}

func conditionArgs(c []entities.Condition) []any {
	args := make([]any, len(c))
	for i := range c {
		args[i] = c[i]
	}
	return args
}

// component forwards the operations shared by every component contract
type component struct {
	h      *Handler
	target interfaces.Component
}

func (p component) By() by.Locator {
	res, _ := Call(p.h, nil, Plain("By"), nil, func() (by.Locator, error) {
		return p.target.By(), nil
	})
	return res
}

func (p component) Delegate() interfaces.ElementHandle {
	res, _ := Call(p.h, nil, Plain("Delegate"), nil, func() (interfaces.ElementHandle, error) {
		return p.target.Delegate(), nil
	})
	return res
}

func (p component) Is(c entities.Condition) (bool, error) {
	return Call(p.h, nil, Plain("Is"), []any{c}, func() (bool, error) {
		return p.target.Is(c)
	})
}

func (p component) Has(c entities.Condition) (bool, error) {
	return Call(p.h, nil, Plain("Has"), []any{c}, func() (bool, error) {
		return p.target.Has(c)
	})
}

type untypedProxy struct {
	component
	target interfaces.Untyped
}

func (p *untypedProxy) ShouldBe(c ...entities.Condition) (interfaces.Untyped, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.Untyped, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *untypedProxy) ShouldHave(c ...entities.Condition) (interfaces.Untyped, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.Untyped, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *untypedProxy) ShouldNotBe(c ...entities.Condition) (interfaces.Untyped, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.Untyped, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *untypedProxy) ShouldNotHave(c ...entities.Condition) (interfaces.Untyped, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.Untyped, error) {
		return p.target.ShouldNotHave(c...)
	})
}

type buttonProxy struct {
	component
	target interfaces.Button
}

func (p *buttonProxy) ShouldBe(c ...entities.Condition) (interfaces.Button, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.Button, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *buttonProxy) ShouldHave(c ...entities.Condition) (interfaces.Button, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.Button, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *buttonProxy) ShouldNotBe(c ...entities.Condition) (interfaces.Button, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.Button, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *buttonProxy) ShouldNotHave(c ...entities.Condition) (interfaces.Button, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.Button, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *buttonProxy) Click() (interfaces.Button, error) {
	return Call(p.h, p, Logged("Click"), nil, p.target.Click)
}

func (p *buttonProxy) Caption() (string, error) {
	return Call(p.h, p, Plain("Caption"), nil, p.target.Caption)
}

type textFieldProxy struct {
	component
	target interfaces.TextField
}

func (p *textFieldProxy) ShouldBe(c ...entities.Condition) (interfaces.TextField, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.TextField, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *textFieldProxy) ShouldHave(c ...entities.Condition) (interfaces.TextField, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.TextField, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *textFieldProxy) ShouldNotBe(c ...entities.Condition) (interfaces.TextField, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.TextField, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *textFieldProxy) ShouldNotHave(c ...entities.Condition) (interfaces.TextField, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.TextField, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *textFieldProxy) SetValue(value string) (interfaces.TextField, error) {
	return Call(p.h, p, Logged("SetValue"), []any{value}, func() (interfaces.TextField, error) {
		return p.target.SetValue(value)
	})
}

func (p *textFieldProxy) Value() (string, error) {
	return Call(p.h, p, Plain("Value"), nil, p.target.Value)
}

type passwordFieldProxy struct {
	component
	target interfaces.PasswordField
}

func (p *passwordFieldProxy) ShouldBe(c ...entities.Condition) (interfaces.PasswordField, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.PasswordField, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *passwordFieldProxy) ShouldHave(c ...entities.Condition) (interfaces.PasswordField, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.PasswordField, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *passwordFieldProxy) ShouldNotBe(c ...entities.Condition) (interfaces.PasswordField, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.PasswordField, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *passwordFieldProxy) ShouldNotHave(c ...entities.Condition) (interfaces.PasswordField, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.PasswordField, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *passwordFieldProxy) SetValue(value string) (interfaces.PasswordField, error) {
	return Call(p.h, p, Logged("SetValue"), []any{value}, func() (interfaces.PasswordField, error) {
		return p.target.SetValue(value)
	})
}

func (p *passwordFieldProxy) Value() (string, error) {
	return Call(p.h, p, Plain("Value"), nil, p.target.Value)
}

type checkBoxProxy struct {
	component
	target interfaces.CheckBox
}

func (p *checkBoxProxy) ShouldBe(c ...entities.Condition) (interfaces.CheckBox, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.CheckBox, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *checkBoxProxy) ShouldHave(c ...entities.Condition) (interfaces.CheckBox, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.CheckBox, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *checkBoxProxy) ShouldNotBe(c ...entities.Condition) (interfaces.CheckBox, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.CheckBox, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *checkBoxProxy) ShouldNotHave(c ...entities.Condition) (interfaces.CheckBox, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.CheckBox, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *checkBoxProxy) SetChecked(checked bool) (interfaces.CheckBox, error) {
	return Call(p.h, p, Logged("SetChecked"), []any{checked}, func() (interfaces.CheckBox, error) {
		return p.target.SetChecked(checked)
	})
}

func (p *checkBoxProxy) Checked() (bool, error) {
	return Call(p.h, p, Plain("Checked"), nil, p.target.Checked)
}

func (p *checkBoxProxy) Caption() (string, error) {
	return Call(p.h, p, Plain("Caption"), nil, p.target.Caption)
}

type labelProxy struct {
	component
	target interfaces.Label
}

func (p *labelProxy) ShouldBe(c ...entities.Condition) (interfaces.Label, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.Label, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *labelProxy) ShouldHave(c ...entities.Condition) (interfaces.Label, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.Label, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *labelProxy) ShouldNotBe(c ...entities.Condition) (interfaces.Label, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.Label, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *labelProxy) ShouldNotHave(c ...entities.Condition) (interfaces.Label, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.Label, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *labelProxy) Value() (string, error) {
	return Call(p.h, p, Plain("Value"), nil, p.target.Value)
}

type lookupFieldProxy struct {
	component
	target interfaces.LookupField
}

func (p *lookupFieldProxy) ShouldBe(c ...entities.Condition) (interfaces.LookupField, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.LookupField, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *lookupFieldProxy) ShouldHave(c ...entities.Condition) (interfaces.LookupField, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.LookupField, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *lookupFieldProxy) ShouldNotBe(c ...entities.Condition) (interfaces.LookupField, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.LookupField, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *lookupFieldProxy) ShouldNotHave(c ...entities.Condition) (interfaces.LookupField, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.LookupField, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *lookupFieldProxy) SetValue(value string) (interfaces.LookupField, error) {
	return Call(p.h, p, Logged("SetValue"), []any{value}, func() (interfaces.LookupField, error) {
		return p.target.SetValue(value)
	})
}

func (p *lookupFieldProxy) Value() (string, error) {
	return Call(p.h, p, Plain("Value"), nil, p.target.Value)
}

type tableProxy struct {
	component
	target interfaces.Table
}

func (p *tableProxy) ShouldBe(c ...entities.Condition) (interfaces.Table, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.Table, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *tableProxy) ShouldHave(c ...entities.Condition) (interfaces.Table, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.Table, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *tableProxy) ShouldNotBe(c ...entities.Condition) (interfaces.Table, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.Table, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *tableProxy) ShouldNotHave(c ...entities.Condition) (interfaces.Table, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.Table, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *tableProxy) RowCount() (int, error) {
	return Call(p.h, p, Plain("RowCount"), nil, p.target.RowCount)
}

func (p *tableProxy) SelectRow(text string) (interfaces.Table, error) {
	return Call(p.h, p, Logged("SelectRow"), []any{text}, func() (interfaces.Table, error) {
		return p.target.SelectRow(text)
	})
}

type groupBoxProxy struct {
	component
	target interfaces.GroupBox
}

func (p *groupBoxProxy) ShouldBe(c ...entities.Condition) (interfaces.GroupBox, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.GroupBox, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *groupBoxProxy) ShouldHave(c ...entities.Condition) (interfaces.GroupBox, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.GroupBox, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *groupBoxProxy) ShouldNotBe(c ...entities.Condition) (interfaces.GroupBox, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.GroupBox, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *groupBoxProxy) ShouldNotHave(c ...entities.Condition) (interfaces.GroupBox, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.GroupBox, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *groupBoxProxy) Caption() (string, error) {
	return Call(p.h, p, Plain("Caption"), nil, p.target.Caption)
}

type popupButtonProxy struct {
	component
	target interfaces.PopupButton
}

func (p *popupButtonProxy) ShouldBe(c ...entities.Condition) (interfaces.PopupButton, error) {
	return Call(p.h, p, Logged("ShouldBe"), conditionArgs(c), func() (interfaces.PopupButton, error) {
		return p.target.ShouldBe(c...)
	})
}

func (p *popupButtonProxy) ShouldHave(c ...entities.Condition) (interfaces.PopupButton, error) {
	return Call(p.h, p, Logged("ShouldHave"), conditionArgs(c), func() (interfaces.PopupButton, error) {
		return p.target.ShouldHave(c...)
	})
}

func (p *popupButtonProxy) ShouldNotBe(c ...entities.Condition) (interfaces.PopupButton, error) {
	return Call(p.h, p, Logged("ShouldNotBe"), conditionArgs(c), func() (interfaces.PopupButton, error) {
		return p.target.ShouldNotBe(c...)
	})
}

func (p *popupButtonProxy) ShouldNotHave(c ...entities.Condition) (interfaces.PopupButton, error) {
	return Call(p.h, p, Logged("ShouldNotHave"), conditionArgs(c), func() (interfaces.PopupButton, error) {
		return p.target.ShouldNotHave(c...)
	})
}

func (p *popupButtonProxy) Click(option string) (interfaces.PopupButton, error) {
	return Call(p.h, p, Logged("Click"), []any{option}, func() (interfaces.PopupButton, error) {
		return p.target.Click(option)
	})
}

func (p *popupButtonProxy) OpenPopupContent() (interfaces.PopupContent, error) {
	return Call(p.h, p, Logged("OpenPopupContent"), nil, p.target.OpenPopupContent)
}

func (p *popupButtonProxy) PopupContent() (interfaces.PopupContent, error) {
	return Call(p.h, p, Plain("PopupContent"), nil, p.target.PopupContent)
}

type popupContentProxy struct {
	h      *Handler
	target interfaces.PopupContent
}

func (p *popupContentProxy) By() by.Locator {
	res, _ := Call(p.h, nil, Plain("By"), nil, func() (by.Locator, error) {
		return p.target.By(), nil
	})
	return res
}

func (p *popupContentProxy) Delegate() interfaces.ElementHandle {
	res, _ := Call(p.h, nil, Plain("Delegate"), nil, func() (interfaces.ElementHandle, error) {
		return p.target.Delegate(), nil
	})
	return res
}

func (p *popupContentProxy) Select(option string) error {
	return Do(p.h, Logged("Select"), []any{option}, func() error {
		return p.target.Select(option)
	})
}

func (p *popupContentProxy) Options() ([]string, error) {
	return Call(p.h, p, Plain("Options"), nil, p.target.Options)
}
