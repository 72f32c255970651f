package proxy

import (
	"fmt"
	"reflect"

	"masquerade/domain/by"
	"masquerade/domain/interfaces"
)

// TargetID computes the display identity of a proxied target by walking up
// its parents.
func TargetID(target any) string {
	if isNil(target) {
		return ""
	}

	if el, ok := target.(interfaces.Element); ok {
		var own string
		if id := el.LoggingID(); id != "" {
			own = id
		} else if bl, ok := target.(interfaces.ByLocator); ok {
			own = by.Format(bl.By())
		}

		parent := el.Parent()
		switch {
		case !isNil(parent) && own != "":
			return own + " of " + TargetID(parent)
		case !isNil(parent):
			return TargetID(parent)
		case own != "":
			return own
		}
	} else if bl, ok := target.(interfaces.ByLocator); ok {
		return by.Format(bl.By())
	}

	if s, ok := target.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", target)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
