package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"masquerade/domain/entities"
)

const jmxTag = "jmx"

var jmxNameType = reflect.TypeFor[JmxName]()

// JmxName marks a JMX contract. Embed it with the object name as tag:
//
//	type ConfigStorage struct {
//		connector.JmxName `jmx:"app-core.cuba:type=ConfigStorage"`
//		PrintAppProperties func(prefix string) (string, error)
//		GetAppPropertyNames func() ([]string, error)
//	}
type JmxName struct{}

// Jmx creates a client of T for the default JMX host
func Jmx[T any](c *Connectors) (*T, error) {
	return JmxAt[T](c, c.jmxHost)
}

// JmxAt creates a client of T for host. The contract is validated before
// any transport is created.
func JmxAt[T any](c *Connectors, host entities.JmxHost) (*T, error) {
	st := reflect.TypeFor[T]()
	if st.Kind() != reflect.Struct {
		return nil, &entities.ConfigurationError{Contract: st.String(), Reason: "JMX contracts must be structs of funcs"}
	}

	name, err := objectName(st)
	if err != nil {
		return nil, err
	}
	bindings, err := planFuncs(st)
	if err != nil {
		return nil, err
	}
	ops := make([]func(args []any) entities.RemoteOperation, len(bindings))
	for i, b := range bindings {
		op, err := jmxOperation(st, b)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}

	handler := c.handlers(host, name)
	log := c.log.WithField("mbean", name)

	v := reflect.New(st)
	for i, b := range bindings {
		op := ops[i]
		v.Elem().Field(b.index).Set(b.makeFunc(func(ctx context.Context, args []any) (json.RawMessage, error) {
			operation := op(args)
			log.Debugf("JMX %s %s", operation.Kind, operation.Name)
			return handler.Invoke(ctx, operation)
		}))
	}
	return v.Interface().(*T), nil
}

func objectName(st reflect.Type) (string, error) {
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.Anonymous || f.Type != jmxNameType {
			continue
		}
		name := strings.TrimSpace(f.Tag.Get(jmxTag))
		if name == "" {
			return "", &entities.ConfigurationError{Contract: st.String(), Reason: "JmxName has no object name"}
		}
		return name, nil
	}
	return "", &entities.ConfigurationError{Contract: st.String(), Reason: "JmxName marker is missing"}
}

// jmxOperation maps a func field to a JMX request. GetX() reads and
// SetX(v) writes attribute X, anything else executes the operation named
// after the field. The jmx tag overrides with "op=name" or "attr=Name".
func jmxOperation(st reflect.Type, b binding) (func(args []any) entities.RemoteOperation, error) {
	name := b.field.Name
	tag := b.field.Tag.Get(jmxTag)

	var kind entities.RemoteOperationKind
	switch {
	case strings.HasPrefix(tag, "op="):
		kind, name = entities.RemoteExec, strings.TrimPrefix(tag, "op=")
	case strings.HasPrefix(tag, "attr="):
		name = strings.TrimPrefix(tag, "attr=")
		switch len(b.args) {
		case 0:
			kind = entities.RemoteRead
		case 1:
			kind = entities.RemoteWrite
		default:
			return nil, signatureError(st, b.field, "attributes take no or one argument")
		}
	case tag != "":
		return nil, signatureError(st, b.field, fmt.Sprintf("invalid jmx tag %q", tag))
	case strings.HasPrefix(name, "Get") && len(name) > 3 && len(b.args) == 0:
		kind, name = entities.RemoteRead, name[3:]
	case strings.HasPrefix(name, "Set") && len(name) > 3 && len(b.args) == 1:
		kind, name = entities.RemoteWrite, name[3:]
	default:
		kind, name = entities.RemoteExec, lowerFirst(name)
	}

	if kind == entities.RemoteWrite && b.result != nil {
		return nil, signatureError(st, b.field, "attribute writes return only error")
	}
	return func(args []any) entities.RemoteOperation {
		return entities.RemoteOperation{Kind: kind, Name: name, Args: args}
	}, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
