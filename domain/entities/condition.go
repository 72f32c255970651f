package entities

import (
	"fmt"
	"strings"
)

// ConditionName identifies the kind of check a Condition performs
type ConditionName string

const (
	CondVisible   ConditionName = "visible"
	CondEnabled   ConditionName = "enabled"
	CondEditable  ConditionName = "editable"
	CondChecked   ConditionName = "checked"
	CondExactText ConditionName = "exactText"
	CondCSSClass  ConditionName = "cssClass"
	CondValue     ConditionName = "value"
	CondAttribute ConditionName = "attribute"
	CondCaption   ConditionName = "caption"
)

// Condition is a state a component or element is expected to be in.
// Conditions are plain comparable values.
type Condition struct {
	Name   ConditionName `json:"name"`
	Key    string        `json:"key,omitempty"`
	Value  string        `json:"value,omitempty"`
	Negate bool          `json:"negate,omitempty"`
}

var (
	Visible   = Condition{Name: CondVisible}
	Hidden    = Not(Visible)
	Enabled   = Condition{Name: CondEnabled}
	Disabled  = Not(Enabled)
	Editable  = Condition{Name: CondEditable}
	Readonly  = Not(Editable)
	Checked   = Condition{Name: CondChecked}
	Unchecked = Not(Checked)
)

// Caption expects the component caption to equal caption
func Caption(caption string) Condition {
	return Condition{Name: CondCaption, Value: caption}
}

// Value expects the current value of an input
func Value(value string) Condition {
	return Condition{Name: CondValue, Value: value}
}

// ExactText expects the visible text, case sensitive
func ExactText(text string) Condition {
	return Condition{Name: CondExactText, Value: text}
}

// CSSClass expects the element to carry a css class
func CSSClass(class string) Condition {
	return Condition{Name: CondCSSClass, Value: class}
}

// Attribute expects an attribute to carry value
func Attribute(name, value string) Condition {
	return Condition{Name: CondAttribute, Key: name, Value: value}
}

// Not inverts a condition. Not(Not(c)) == c.
func Not(c Condition) Condition {
	c.Negate = !c.Negate
	return c
}

// Positive returns the condition without negation
func (c Condition) Positive() Condition {
	c.Negate = false
	return c
}

func (c Condition) String() string {
	var s string
	switch {
	case c.Key != "":
		s = fmt.Sprintf("%s %s='%s'", c.Name, c.Key, c.Value)
	case c.Value != "":
		s = fmt.Sprintf("%s '%s'", c.Name, c.Value)
	default:
		s = string(c.Name)
	}
	if c.Negate {
		return "not " + s
	}
	return s
}

// ParseCondition reads the console form of a condition: "visible",
// "!enabled", "caption=Submit", "attribute=type:password"
func ParseCondition(s string) (Condition, error) {
	negate := false
	if len(s) > 0 && s[0] == '!' {
		negate = true
		s = s[1:]
	}

	name, value, hasValue := strings.Cut(s, "=")
	var c Condition
	switch ConditionName(name) {
	case CondVisible, CondEnabled, CondEditable, CondChecked:
		c = Condition{Name: ConditionName(name)}
	case "hidden":
		c = Hidden
	case "disabled":
		c = Disabled
	case "readonly":
		c = Readonly
	case "unchecked":
		c = Unchecked
	case CondCaption, CondValue, CondExactText, CondCSSClass:
		if !hasValue {
			return Condition{}, fmt.Errorf("condition %q requires a value", name)
		}
		c = Condition{Name: ConditionName(name), Value: value}
	case CondAttribute:
		key, v, ok := strings.Cut(value, ":")
		if !ok {
			return Condition{}, fmt.Errorf("condition %q requires name:value", name)
		}
		c = Attribute(key, v)
	default:
		return Condition{}, fmt.Errorf("unknown condition %q", name)
	}
	if negate {
		c = Not(c)
	}
	return c, nil
}
