package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNilContract is returned when a wire call gets no contract type
	ErrNilContract = errors.New("masquerade: contract type cannot be nil")

	// ErrNilLocator is returned when a wire call gets a nil locator
	ErrNilLocator = errors.New("masquerade: locator cannot be nil")

	// ErrUnsupportedTarget is returned when a wire target is neither a
	// locator, an element handle nor path segments
	ErrUnsupportedTarget = errors.New("masquerade: unsupported wire target")
)

// ConfigurationError reports a remote contract that lacks its required
// name annotation, or declares an unusable operation signature.
type ConfigurationError struct {
	Contract string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("masquerade: invalid contract %s: %s", e.Contract, e.Reason)
}

// InstantiationError reports a composite that cannot be default-constructed
type InstantiationError struct {
	Type  string
	Cause error
}

func (e *InstantiationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("masquerade: unable to instantiate composite %s: %v", e.Type, e.Cause)
	}
	return "masquerade: unable to instantiate composite " + e.Type
}

func (e *InstantiationError) Unwrap() error { return e.Cause }

// FieldInjectionError reports a composite field that could not be assigned
type FieldInjectionError struct {
	Type  string
	Field string
	Cause error
}

func (e *FieldInjectionError) Error() string {
	return fmt.Sprintf("masquerade: unable to inject field %s.%s: %v", e.Type, e.Field, e.Cause)
}

func (e *FieldInjectionError) Unwrap() error { return e.Cause }

// AuthenticationError reports a failed OAuth token exchange
type AuthenticationError struct {
	BaseURL string
	Cause   error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("masquerade: unable to obtain OAuth2 token from %s: %v", e.BaseURL, e.Cause)
}

func (e *AuthenticationError) Unwrap() error { return e.Cause }

// InvocationError wraps the failure of a reflectively dispatched operation.
// The interception layer unwraps it so callers see Cause.
type InvocationError struct {
	Operation string
	Cause     any
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("masquerade: operation %s failed: %v", e.Operation, e.Cause)
}

// Unwrap returns Cause when it is an error
func (e *InvocationError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
