package wiring

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masquerade/domain/by"
	"masquerade/domain/interfaces"
)

func TestRegistry_RegisterOverwrites(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	bt := reflect.TypeFor[interfaces.Button]()

	r.Register(bt, func(by.Locator) any { return "first" })
	r.Register(bt, func(by.Locator) any { return "second" })

	f, ok := r.Lookup(bt)
	require.True(t, ok)
	assert.Equal(t, "second", f(by.Root))
	assert.Equal(t, 1, r.Len())

	_, ok = r.Lookup(reflect.TypeFor[interfaces.Table]())
	assert.False(t, ok)
}

func TestRegistry_MergeAndTypes(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(reflect.TypeFor[interfaces.Table](), func(by.Locator) any { return "old" })
	r.Merge(map[reflect.Type]interfaces.Factory{
		reflect.TypeFor[interfaces.Table]():  func(by.Locator) any { return "new" },
		reflect.TypeFor[interfaces.Button](): func(by.Locator) any { return "button" },
		reflect.TypeFor[interfaces.Label]():  nil,
	})

	f, _ := r.Lookup(reflect.TypeFor[interfaces.Table]())
	assert.Equal(t, "new", f(by.Root))

	types := r.Types()
	require.Len(t, types, 2)
	assert.Equal(t, "interfaces.Button", types[0].String())
	assert.Equal(t, "interfaces.Table", types[1].String())
}

func TestRegistry_LookupName(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(reflect.TypeFor[interfaces.PopupButton](), func(by.Locator) any { return nil })

	got, ok := r.LookupName("popupbutton")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[interfaces.PopupButton](), got)

	_, ok = r.LookupName("interfaces.PopupButton")
	assert.True(t, ok)

	_, ok = r.LookupName("Spinner")
	assert.False(t, ok)
}
