// Package proxy instruments component contracts. Every contract has a
// wrapper struct forwarding to the real implementation through a Handler,
// which logs loggable operations, keeps fluent chains on the proxy and
// re-wraps element results.
package proxy

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"masquerade/domain/entities"
)

const tracerName = "masquerade/proxy"

// Method describes a proxied operation
type Method struct {
	Name string
	Log  bool
}

// Logged describes an operation that is logged before dispatch
func Logged(name string) Method { return Method{Name: name, Log: true} }

// Plain describes an operation that is dispatched silently
func Plain(name string) Method { return Method{Name: name} }

// RewrapRule decides what a proxied call returns for a non-nil result of
// the declared return type.
type RewrapRule func(declared reflect.Type, value any) any

// Handler holds the target of one proxy
type Handler struct {
	log      logrus.FieldLogger
	contract string
	target   any
	targetID string
	rewrap   RewrapRule
	tracer   trace.Tracer
}

// NewHandler creates a handler for target. The display identity is computed
// here once.
func NewHandler(log logrus.FieldLogger, contract reflect.Type, target any, rewrap RewrapRule) *Handler {
	name := "component"
	if contract != nil {
		name = contract.Name()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		log:      log.WithField("component", name),
		contract: name,
		target:   target,
		targetID: TargetID(target),
		rewrap:   rewrap,
		tracer:   otel.Tracer(tracerName),
	}
}

// Target returns the instrumented instance
func (h *Handler) Target() any {
	return h.target
}

// TargetID returns the display identity
func (h *Handler) TargetID() string {
	return h.targetID
}

// Call dispatches an operation with a result. self is the proxy returned in
// place of the target when the operation returns the target itself.
func Call[R any](h *Handler, self any, m Method, args []any, fn func() (R, error)) (R, error) {
	end := h.before(m, args)
	res, err := fn()
	err = unwrapCause(err)
	end(err)
	return postProcess(h, self, res), err
}

// Do dispatches an operation without a result
func Do(h *Handler, m Method, args []any, fn func() error) error {
	end := h.before(m, args)
	err := unwrapCause(fn())
	end(err)
	return err
}

func (h *Handler) before(m Method, args []any) func(error) {
	if m.Log {
		h.logExecution(m, args)
	}

	_, span := h.tracer.Start(context.Background(), h.contract+"."+m.Name,
		trace.WithAttributes(attribute.String("masquerade.target", h.targetID)))
	return func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

func (h *Handler) logExecution(m Method, args []any) {
	if len(args) >= 1 {
		if prop, ok := setterProperty(m.Name); ok && len(args) == 1 {
			h.log.Infof("Set '%s' of '%s' to '%v'", prop, h.targetID, args[0])
			return
		}
		h.log.Infof("%s of '%s' with %s", ReadableName(m.Name), h.targetID, formatArgs(args))
		return
	}
	h.log.Infof("%s '%s'", ReadableName(m.Name), h.targetID)
}

func formatArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprintf("%v", a))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func postProcess[R any](h *Handler, self any, res R) R {
	value := any(res)
	if h.isTarget(value) {
		if s, ok := self.(R); ok {
			return s
		}
		return res
	}

	if h.rewrap != nil && !isNil(value) {
		if wrapped, ok := h.rewrap(reflect.TypeFor[R](), value).(R); ok {
			return wrapped
		}
	}
	return res
}

// isTarget reports identity with the target without comparing values of
// uncomparable types.
func (h *Handler) isTarget(v any) bool {
	if v == nil || h.target == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if t != reflect.TypeOf(h.target) || !t.Comparable() {
		return false
	}
	return v == h.target
}

func unwrapCause(err error) error {
	inv, ok := err.(*entities.InvocationError)
	if ok && inv.Cause != nil {
		if cause, ok := inv.Cause.(error); ok {
			return cause
		}
		panic(inv.Cause)
	}
	return err
}
