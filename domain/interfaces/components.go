package interfaces

import (
	"reflect"

	"masquerade/domain/by"
	"masquerade/domain/entities"
)

// Factory builds a component bound to a locator
type Factory func(loc by.Locator) any

// ComponentConfig contributes contract implementations to the registry
type ComponentConfig interface {
	Components(d Driver) (map[reflect.Type]Factory, error)
}

// PathHint is implemented by types carrying a default location
type PathHint interface {
	WirePath() []string
}

// ByLocator exposes the locator of a target
type ByLocator interface {
	By() by.Locator
}

// Wrapper is the element contract family: values whose declared type
// embeds Wrapper are instrumented again when returned from a proxied call.
type Wrapper interface {
	ByLocator
	Delegate() ElementHandle
}

// Element is a target nested inside another component. LoggingID may be
// empty; Parent may be nil.
type Element interface {
	Parent() Component
	LoggingID() string
}

// Component is the base of all UI component contracts
type Component interface {
	Wrapper
	Is(c entities.Condition) (bool, error)
	Has(c entities.Condition) (bool, error)
}

// Untyped is a component without specific behaviour
type Untyped interface {
	Component
	ShouldBe(c ...entities.Condition) (Untyped, error)
	ShouldHave(c ...entities.Condition) (Untyped, error)
	ShouldNotBe(c ...entities.Condition) (Untyped, error)
	ShouldNotHave(c ...entities.Condition) (Untyped, error)
}

type Button interface {
	Component
	ShouldBe(c ...entities.Condition) (Button, error)
	ShouldHave(c ...entities.Condition) (Button, error)
	ShouldNotBe(c ...entities.Condition) (Button, error)
	ShouldNotHave(c ...entities.Condition) (Button, error)
	Click() (Button, error)
	Caption() (string, error)
}

type TextField interface {
	Component
	ShouldBe(c ...entities.Condition) (TextField, error)
	ShouldHave(c ...entities.Condition) (TextField, error)
	ShouldNotBe(c ...entities.Condition) (TextField, error)
	ShouldNotHave(c ...entities.Condition) (TextField, error)
	SetValue(value string) (TextField, error)
	Value() (string, error)
}

type PasswordField interface {
	Component
	ShouldBe(c ...entities.Condition) (PasswordField, error)
	ShouldHave(c ...entities.Condition) (PasswordField, error)
	ShouldNotBe(c ...entities.Condition) (PasswordField, error)
	ShouldNotHave(c ...entities.Condition) (PasswordField, error)
	SetValue(value string) (PasswordField, error)
	Value() (string, error)
}

type CheckBox interface {
	Component
	ShouldBe(c ...entities.Condition) (CheckBox, error)
	ShouldHave(c ...entities.Condition) (CheckBox, error)
	ShouldNotBe(c ...entities.Condition) (CheckBox, error)
	ShouldNotHave(c ...entities.Condition) (CheckBox, error)
	SetChecked(checked bool) (CheckBox, error)
	Checked() (bool, error)
	Caption() (string, error)
}

type Label interface {
	Component
	ShouldBe(c ...entities.Condition) (Label, error)
	ShouldHave(c ...entities.Condition) (Label, error)
	ShouldNotBe(c ...entities.Condition) (Label, error)
	ShouldNotHave(c ...entities.Condition) (Label, error)
	Value() (string, error)
}

// LookupField is a combo box backed by a suggestion popup
type LookupField interface {
	Component
	ShouldBe(c ...entities.Condition) (LookupField, error)
	ShouldHave(c ...entities.Condition) (LookupField, error)
	ShouldNotBe(c ...entities.Condition) (LookupField, error)
	ShouldNotHave(c ...entities.Condition) (LookupField, error)
	SetValue(value string) (LookupField, error)
	Value() (string, error)
}

type Table interface {
	Component
	ShouldBe(c ...entities.Condition) (Table, error)
	ShouldHave(c ...entities.Condition) (Table, error)
	ShouldNotBe(c ...entities.Condition) (Table, error)
	ShouldNotHave(c ...entities.Condition) (Table, error)
	RowCount() (int, error)
	SelectRow(text string) (Table, error)
}

type GroupBox interface {
	Component
	ShouldBe(c ...entities.Condition) (GroupBox, error)
	ShouldHave(c ...entities.Condition) (GroupBox, error)
	ShouldNotBe(c ...entities.Condition) (GroupBox, error)
	ShouldNotHave(c ...entities.Condition) (GroupBox, error)
	Caption() (string, error)
}

type PopupButton interface {
	Component
	ShouldBe(c ...entities.Condition) (PopupButton, error)
	ShouldHave(c ...entities.Condition) (PopupButton, error)
	ShouldNotBe(c ...entities.Condition) (PopupButton, error)
	ShouldNotHave(c ...entities.Condition) (PopupButton, error)

	// Click opens the popup and selects option
	Click(option string) (PopupButton, error)
	OpenPopupContent() (PopupContent, error)
	PopupContent() (PopupContent, error)
}

// PopupContent is the opened option list of a PopupButton
type PopupContent interface {
	Wrapper
	Select(option string) error
	Options() ([]string, error)
}
