package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"masquerade/domain/entities"
)

var (
	contextType = reflect.TypeFor[context.Context]()
	errorType   = reflect.TypeFor[error]()
)

// dispatch performs one remote call with the arguments of a func field
type dispatch func(ctx context.Context, args []any) (json.RawMessage, error)

// binding is a planned func field
type binding struct {
	index  int
	field  reflect.StructField
	hasCtx bool
	args   []reflect.Type
	result reflect.Type
}

// planFuncs checks the signature of every exported func field of st.
// Fields that are not funcs are skipped.
func planFuncs(st reflect.Type) ([]binding, error) {
	var out []binding
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.Type.Kind() != reflect.Func || !f.IsExported() {
			continue
		}
		b, err := plan(st, i, f)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func plan(st reflect.Type, index int, f reflect.StructField) (binding, error) {
	ft := f.Type
	b := binding{index: index, field: f}

	if ft.IsVariadic() {
		return b, signatureError(st, f, "variadic operations are not supported")
	}
	for i := 0; i < ft.NumIn(); i++ {
		in := ft.In(i)
		if i == 0 && in == contextType {
			b.hasCtx = true
			continue
		}
		b.args = append(b.args, in)
	}

	switch ft.NumOut() {
	case 1:
		if ft.Out(0) != errorType {
			return b, signatureError(st, f, "the only result must be error")
		}
	case 2:
		if ft.Out(1) != errorType {
			return b, signatureError(st, f, "the second result must be error")
		}
		b.result = ft.Out(0)
	default:
		return b, signatureError(st, f, "results must be (R, error) or (error)")
	}
	return b, nil
}

func signatureError(st reflect.Type, f reflect.StructField, reason string) error {
	return &entities.ConfigurationError{
		Contract: st.String(),
		Reason:   fmt.Sprintf("field %s: %s", f.Name, reason),
	}
}

// makeFunc builds the dispatcher for b
func (b binding) makeFunc(d dispatch) reflect.Value {
	ft := b.field.Type
	return reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		ctx := context.Background()
		if b.hasCtx {
			if c, ok := in[0].Interface().(context.Context); ok && c != nil {
				ctx = c
			}
			in = in[1:]
		}

		args := make([]any, 0, len(in))
		for _, v := range in {
			args = append(args, v.Interface())
		}

		raw, err := d(ctx, args)
		if b.result == nil {
			return []reflect.Value{errorValue(err)}
		}

		result := reflect.New(b.result)
		if err == nil && len(raw) > 0 && string(raw) != "null" {
			if uerr := json.Unmarshal(raw, result.Interface()); uerr != nil {
				err = fmt.Errorf("failed to decode result of %s: %w", b.field.Name, uerr)
			}
		}
		return []reflect.Value{result.Elem(), errorValue(err)}
	})
}

func errorValue(err error) reflect.Value {
	v := reflect.New(errorType).Elem()
	if err != nil {
		v.Set(reflect.ValueOf(err))
	}
	return v
}
