package proxy

import (
	"fmt"
	"reflect"

	"masquerade/domain/entities"
)

var errorType = reflect.TypeFor[error]()

// Invoke calls the operation name on v reflectively. A panic inside the
// operation is caught as an InvocationError and unwrapped: an error cause is
// returned as the error, any other cause is raised again unchanged.
func Invoke(v any, name string, args ...any) ([]any, error) {
	if isNil(v) {
		return nil, fmt.Errorf("cannot invoke %s on nil", name)
	}

	rv := reflect.ValueOf(v)
	method := rv.MethodByName(name)
	if !method.IsValid() {
		method = rv.MethodByName(capitalize(name))
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("%T has no operation %s", v, name)
	}

	in, err := arguments(method.Type(), name, args)
	if err != nil {
		return nil, err
	}

	out, err := dispatch(method, name, in)
	return out, unwrapCause(err)
}

func dispatch(method reflect.Value, name string, in []reflect.Value) (results []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = &entities.InvocationError{Operation: name, Cause: r}
		}
	}()

	out := method.Call(in)
	mt := method.Type()
	for i, o := range out {
		if i == len(out)-1 && mt.Out(i) == errorType {
			if !o.IsNil() {
				err = o.Interface().(error)
			}
			break
		}
		results = append(results, o.Interface())
	}
	return results, err
}

func arguments(mt reflect.Type, name string, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%s expects at least %d arguments, got %d", name, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", name, fixed, len(args))
	}

	in := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		var pt reflect.Type
		if i < fixed {
			pt = mt.In(i)
		} else {
			pt = mt.In(fixed).Elem()
		}
		v, err := convert(a, pt)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", name, i, err)
		}
		in = append(in, v)
	}
	return in, nil
}

func convert(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(pt), nil
	}
	v := reflect.ValueOf(a)
	switch {
	case v.Type().AssignableTo(pt):
		return v, nil
	case v.Kind() == pt.Kind() && v.Type().ConvertibleTo(pt):
		return v.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", a, pt)
}
