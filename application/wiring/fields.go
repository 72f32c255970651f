package wiring

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
	"unsafe"

	"github.com/sirupsen/logrus"

	"masquerade/domain/by"
	"masquerade/domain/entities"
)

const (
	wireTag   = "wire"
	findByTag = "findby"
)

var (
	entryType       = reflect.TypeFor[*logrus.Entry]()
	fieldLoggerType = reflect.TypeFor[logrus.FieldLogger]()
	componentsType  = reflect.TypeFor[*Components]()
	schemaType      = reflect.TypeFor[SchemaProvider]()

	errNoDriver = errors.New("no driver to resolve element handles")
)

// FieldKind selects how a composite field gets its value
type FieldKind int

const (
	// FieldNested derives the field from the parent locator
	FieldNested FieldKind = iota + 1
	// FieldFindBy locates the field with a driver-native directive
	FieldFindBy
)

// FieldSpec declares how one composite field is wired
type FieldSpec struct {
	Field  string
	Kind   FieldKind
	Path   []string
	FindBy string
}

// Nested declares a field derived from the parent. Without a path the
// field name with a lower-case first letter is used.
func Nested(field string, path ...string) FieldSpec {
	return FieldSpec{Field: field, Kind: FieldNested, Path: path}
}

// FindBy declares a field located by a "strategy=value" directive
func FindBy(field, directive string) FieldSpec {
	return FieldSpec{Field: field, Kind: FieldFindBy, FindBy: directive}
}

// SchemaProvider is implemented by composites that declare their fields in
// code. Its specs override struct tags for the same field.
type SchemaProvider interface {
	WireSchema() []FieldSpec
}

type field struct {
	name      string
	index     []int
	typ       reflect.Type
	declaring reflect.Type
	spec      *FieldSpec
}

// fields lists every field of the struct type st, embedded ones included,
// with the spec that applies to it.
func fields(st reflect.Type) ([]field, error) {
	var out []field
	collect(st, nil, &out)

	byName := make(map[string]int, len(out))
	for i, f := range out {
		byName[f.name] = i
	}

	for _, s := range schemaOf(st) {
		i, ok := byName[s.Field]
		if !ok {
			return nil, &entities.FieldInjectionError{
				Type:  st.String(),
				Field: s.Field,
				Cause: errors.New("no such field"),
			}
		}
		spec := s
		out[i].spec = &spec
	}
	return out, nil
}

func collect(st reflect.Type, prefix []int, out *[]field) {
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		index := append(append([]int(nil), prefix...), i)
		spec := tagSpec(sf)

		if sf.Anonymous && spec == nil && sf.Type.Kind() == reflect.Struct {
			collect(sf.Type, index, out)
			continue
		}
		*out = append(*out, field{
			name:      sf.Name,
			index:     index,
			typ:       sf.Type,
			declaring: st,
			spec:      spec,
		})
	}
}

func tagSpec(sf reflect.StructField) *FieldSpec {
	if path, ok := sf.Tag.Lookup(wireTag); ok {
		spec := Nested(sf.Name, splitPath(path)...)
		return &spec
	}
	if directive, ok := sf.Tag.Lookup(findByTag); ok {
		spec := FindBy(sf.Name, directive)
		return &spec
	}
	return nil
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func schemaOf(st reflect.Type) []FieldSpec {
	pt := reflect.PointerTo(st)
	switch {
	case pt.Implements(schemaType):
		return reflect.New(st).Interface().(SchemaProvider).WireSchema()
	case st.Implements(schemaType):
		return reflect.Zero(st).Interface().(SchemaProvider).WireSchema()
	}
	return nil
}

// compose instantiates the composite t and wires its fields against loc
func (c *Components) compose(t reflect.Type, loc by.Locator) (any, error) {
	st := t
	if t.Kind() == reflect.Pointer {
		st = t.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, &entities.InstantiationError{
			Type:  t.String(),
			Cause: fmt.Errorf("%s is neither registered nor a struct", t.Kind()),
		}
	}

	list, err := fields(st)
	if err != nil {
		return nil, err
	}

	ptr := reflect.New(st)
	dst := ptr.Elem()
	for _, f := range list {
		if f.spec == nil {
			continue
		}
		v, err := c.fieldValue(f, loc)
		if err != nil {
			return nil, &entities.FieldInjectionError{Type: st.String(), Field: f.name, Cause: err}
		}
		if err := assign(dst.FieldByIndex(f.index), v); err != nil {
			return nil, &entities.FieldInjectionError{Type: st.String(), Field: f.name, Cause: err}
		}
	}

	c.log.WithField("locator", loc.String()).Debugf("Wired composite %s", t)
	if t.Kind() == reflect.Pointer {
		return ptr.Interface(), nil
	}
	return dst.Interface(), nil
}

func (c *Components) fieldValue(f field, parent by.Locator) (any, error) {
	switch f.spec.Kind {
	case FieldNested:
		switch f.typ {
		case elementHandleType:
			if c.driver == nil {
				return nil, errNoDriver
			}
			return c.driver.Find(parent), nil
		case locatorType:
			return parent, nil
		case entryType, fieldLoggerType:
			return c.log.WithField("component", f.declaring.Name()), nil
		case componentsType:
			return c, nil
		}

		path := f.spec.Path
		if len(path) == 0 {
			path = []string{uncapitalize(f.name)}
		}
		return c.WireAt(f.typ, child(parent, by.Path(path...)))

	case FieldFindBy:
		loc, err := by.Parse(f.spec.FindBy)
		if err != nil {
			return nil, err
		}
		return c.WireAt(f.typ, child(parent, loc))
	}
	return nil, fmt.Errorf("unknown field kind %d", f.spec.Kind)
}

func child(parent, loc by.Locator) by.Locator {
	if by.IsRoot(parent) {
		return loc
	}
	return by.Chained(parent, loc)
}

// assign sets v into the field, unexported fields included
func assign(fv reflect.Value, v any) error {
	if v == nil {
		return nil
	}
	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("cannot assign %T to %s", v, fv.Type())
	}
	if !fv.CanSet() {
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	fv.Set(val)
	return nil
}

func uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
