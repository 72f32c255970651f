package wiring

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masquerade/domain/by"
	"masquerade/domain/interfaces"
	"masquerade/infrastructure/browser/browsertest"
)

type gauge interface {
	interfaces.Component
}

type gaugeImpl struct {
	interfaces.Component
	loc by.Locator
}

func staticProvider(value string, types ...reflect.Type) ProviderFunc {
	return func(interfaces.Driver) (map[reflect.Type]interfaces.Factory, error) {
		m := make(map[reflect.Type]interfaces.Factory, len(types))
		for _, t := range types {
			m[t] = func(by.Locator) any { return value }
		}
		return m, nil
	}
}

func lookup(t *testing.T, c *Components, typ reflect.Type) any {
	t.Helper()
	f, ok := c.Registry().Lookup(typ)
	require.True(t, ok, "%s is not registered", typ)
	return f(by.Root)
}

func TestNew_ProvidersLastWriteWins(t *testing.T) {
	t.Parallel()

	bt := reflect.TypeFor[interfaces.Button]()
	tt := reflect.TypeFor[interfaces.Table]()

	c, err := New(browsertest.NewDriver(), staticProvider("default", bt, tt),
		WithoutRegisteredProviders(),
		WithProviders(staticProvider("first", bt), staticProvider("second", tt)),
	)
	require.NoError(t, err)

	assert.Equal(t, "first", lookup(t, c, bt))
	assert.Equal(t, "second", lookup(t, c, tt))
	assert.NotEmpty(t, c.Session())
}

func TestNew_FailingProviderStopsLoading(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	bt := reflect.TypeFor[interfaces.Button]()
	tt := reflect.TypeFor[interfaces.Table]()
	lt := reflect.TypeFor[interfaces.Label]()

	failing := ProviderFunc(func(interfaces.Driver) (map[reflect.Type]interfaces.Factory, error) {
		return nil, errors.New("broken provider")
	})

	c, err := New(browsertest.NewDriver(), staticProvider("default", bt),
		WithLogger(logger),
		WithoutRegisteredProviders(),
		WithProviders(staticProvider("ok", tt), failing, staticProvider("never", lt)),
	)
	require.NoError(t, err)

	assert.Equal(t, "default", lookup(t, c, bt))
	assert.Equal(t, "ok", lookup(t, c, tt))
	_, ok := c.Registry().Lookup(lt)
	assert.False(t, ok)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Data[logrus.ErrorKey].(error).Error(), "broken provider")
}

func TestNew_PanickingProviderIsRecovered(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	panicking := ProviderFunc(func(interfaces.Driver) (map[reflect.Type]interfaces.Factory, error) {
		panic("no such class")
	})

	c, err := New(browsertest.NewDriver(), nil,
		WithLogger(logger),
		WithoutRegisteredProviders(),
		WithProviders(panicking),
	)
	require.NoError(t, err)
	assert.Zero(t, c.Registry().Len())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestNew_DefaultsFailure(t *testing.T) {
	t.Parallel()

	failing := ProviderFunc(func(interfaces.Driver) (map[reflect.Type]interfaces.Factory, error) {
		return nil, errors.New("cannot build")
	})

	_, err := New(browsertest.NewDriver(), failing, WithoutRegisteredProviders())
	assert.ErrorContains(t, err, "cannot build")
}

var registerGauge sync.Once

func TestRegisterProvider(t *testing.T) {
	gt := reflect.TypeFor[gauge]()
	registerGauge.Do(func() {
		RegisterProvider("gauge", ProviderFunc(func(interfaces.Driver) (map[reflect.Type]interfaces.Factory, error) {
			return map[reflect.Type]interfaces.Factory{
				gt: func(l by.Locator) any { return &gaugeImpl{loc: l} },
			}, nil
		}))
	})

	assert.Contains(t, Providers(), "gauge")
	assert.Panics(t, func() {
		RegisterProvider("gauge", staticProvider("dup"))
	})
	assert.Panics(t, func() {
		RegisterProvider("nil provider", nil)
	})

	c, err := New(browsertest.NewDriver(), nil)
	require.NoError(t, err)
	_, ok := c.Registry().Lookup(gt)
	assert.True(t, ok)

	c, err = New(browsertest.NewDriver(), nil, WithoutRegisteredProviders())
	require.NoError(t, err)
	_, ok = c.Registry().Lookup(gt)
	assert.False(t, ok)
}
