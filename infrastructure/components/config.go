package components

import (
	"reflect"

	"masquerade/domain/by"
	"masquerade/domain/interfaces"
)

// DefaultConfig provides every built-in component
type DefaultConfig struct{}

var _ interfaces.ComponentConfig = DefaultConfig{}

func (DefaultConfig) Components(d interfaces.Driver) (map[reflect.Type]interfaces.Factory, error) {
	return map[reflect.Type]interfaces.Factory{
		reflect.TypeFor[interfaces.Untyped]():       func(l by.Locator) any { return NewUntyped(d, l) },
		reflect.TypeFor[interfaces.Button]():        func(l by.Locator) any { return NewButton(d, l) },
		reflect.TypeFor[interfaces.TextField]():     func(l by.Locator) any { return NewTextField(d, l) },
		reflect.TypeFor[interfaces.PasswordField](): func(l by.Locator) any { return NewPasswordField(d, l) },
		reflect.TypeFor[interfaces.CheckBox]():      func(l by.Locator) any { return NewCheckBox(d, l) },
		reflect.TypeFor[interfaces.Label]():         func(l by.Locator) any { return NewLabel(d, l) },
		reflect.TypeFor[interfaces.LookupField]():   func(l by.Locator) any { return NewLookupField(d, l) },
		reflect.TypeFor[interfaces.Table]():         func(l by.Locator) any { return NewTable(d, l) },
		reflect.TypeFor[interfaces.GroupBox]():      func(l by.Locator) any { return NewGroupBox(d, l) },
		reflect.TypeFor[interfaces.PopupButton]():   func(l by.Locator) any { return NewPopupButton(d, l) },
	}, nil
}
