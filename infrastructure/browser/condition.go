// Package browser adapts browser automation libraries to the driver
// contracts: a playwright-go driver, a tebeka/selenium driver, and the
// condition evaluation both share.
package browser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"masquerade/domain/entities"
)

// ErrConditionNotMet is returned when a wait times out
var ErrConditionNotMet = errors.New("condition not met")

// Probe reads the element state conditions are evaluated against
type Probe interface {
	Visible() (bool, error)
	Enabled() (bool, error)
	Editable() (bool, error)
	Checked() (bool, error)
	Text() (string, error)
	Value() (string, error)
	Attribute(name string) (string, error)
}

// Match evaluates c once against p
func Match(p Probe, c entities.Condition) (bool, error) {
	ok, err := evaluate(p, c.Positive())
	if err != nil {
		return false, err
	}
	return ok != c.Negate, nil
}

func evaluate(p Probe, c entities.Condition) (bool, error) {
	switch c.Name {
	case entities.CondVisible:
		return p.Visible()
	case entities.CondEnabled:
		return p.Enabled()
	case entities.CondEditable:
		return p.Editable()
	case entities.CondChecked:
		return p.Checked()
	case entities.CondExactText:
		text, err := p.Text()
		return text == c.Value, err
	case entities.CondCaption:
		text, err := p.Text()
		return strings.TrimSpace(text) == c.Value, err
	case entities.CondValue:
		value, err := p.Value()
		return value == c.Value, err
	case entities.CondCSSClass:
		classes, err := p.Attribute("class")
		return HasClass(classes, c.Value), err
	case entities.CondAttribute:
		value, err := p.Attribute(c.Key)
		return value == c.Value, err
	}
	return false, fmt.Errorf("unsupported condition %s", c)
}

// HasClass reports whether the class attribute value contains class
func HasClass(classes, class string) bool {
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}

// Poll calls check every interval until it returns true or timeout
// expires. The last check error is wrapped into the timeout error.
func Poll(timeout, interval time.Duration, check func() (bool, error)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	deadline := time.Now().Add(timeout)

	var lastErr error
	for {
		ok, err := check()
		if err == nil && ok {
			return nil
		}
		lastErr = err
		if !time.Now().Before(deadline) {
			break
		}
		time.Sleep(interval)
	}
	if lastErr != nil {
		return fmt.Errorf("%w after %s: %w", ErrConditionNotMet, timeout, lastErr)
	}
	return fmt.Errorf("%w after %s", ErrConditionNotMet, timeout)
}

// WaitFor polls p until c holds
func WaitFor(p Probe, c entities.Condition, timeout, interval time.Duration) error {
	err := Poll(timeout, interval, func() (bool, error) {
		return Match(p, c)
	})
	if err != nil {
		return fmt.Errorf("wait for %s: %w", c, err)
	}
	return nil
}
