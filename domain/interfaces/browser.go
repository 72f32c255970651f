package interfaces

import (
	"masquerade/domain/by"
	"masquerade/domain/entities"
)

// Driver resolves locators against the live document. Find is lazy: the
// returned handle resolves its locator on every operation.
type Driver interface {
	// Find returns a handle for the first element matching loc
	Find(loc by.Locator) ElementHandle

	// FindAll resolves all elements matching loc
	FindAll(loc by.Locator) ([]ElementHandle, error)
}

// Browser is a Driver bound to a running browser session
type Browser interface {
	Driver

	// Open navigates to a URL
	Open(url string) error

	// Close closes the browser
	Close() error
}

// ElementHandle is a live element of the document
type ElementHandle interface {
	// Locator returns the locator the handle resolves
	Locator() by.Locator

	// Find returns a handle for a descendant
	Find(loc by.Locator) ElementHandle

	// FindAll resolves all matching descendants
	FindAll(loc by.Locator) ([]ElementHandle, error)

	// Parent returns the parent element
	Parent() ElementHandle

	Click() error
	Text() (string, error)
	Value() (string, error)

	// SetValue clears the input and types value
	SetValue(value string) error
	Attribute(name string) (string, error)

	// Matches checks a condition once
	Matches(c entities.Condition) (bool, error)

	// WaitFor waits until the condition holds or the driver timeout expires
	WaitFor(c entities.Condition) error
}
