package wiring

import (
	"reflect"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
	"masquerade/infrastructure/browser/browsertest"
	"masquerade/infrastructure/components"
)

type loginForm struct {
	Login    interfaces.TextField `wire:"loginField"`
	Password interfaces.PasswordField
}

type credentials struct {
	LoginField    interfaces.TextField     `wire:""`
	PasswordField interfaces.PasswordField `wire:""`
}

type loginWindow struct {
	Composite
	credentials

	RememberMe  interfaces.CheckBox `wire:"rememberMeCheckBox"`
	LoginButton interfaces.Button   `wire:"loginButton"`
	Welcome     interfaces.Label    `findby:"css=div.welcome"`
	Form        loginForm           `wire:"loginFormLayout"`
	Deep        *loginForm          `wire:"a/b"`

	log       *logrus.Entry            `wire:""`
	handle    interfaces.ElementHandle `wire:""`
	loc       by.Locator               `wire:""`
	untouched interfaces.Button
}

func (*loginWindow) WirePath() []string { return []string{"loginWindow"} }

type fixture struct {
	driver *browsertest.Driver
	c      *Components
	hook   *test.Hook
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()

	logger, hook := test.NewNullLogger()
	d := browsertest.NewDriver()
	opts = append([]Option{WithLogger(logger), WithoutRegisteredProviders()}, opts...)

	c, err := New(d, components.DefaultConfig{}, opts...)
	require.NoError(t, err)
	return fixture{driver: d, c: c, hook: hook}
}

// -----------------------------------------------------------------------------
// composites
// -----------------------------------------------------------------------------

func TestWire_CompositeFields(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	w, err := Wire[*loginWindow](f.c)
	require.NoError(t, err)

	window := by.CubaID("loginWindow")
	assert.Equal(t, window, w.By())
	assert.Equal(t, window, w.loc)
	assert.Equal(t, by.Chained(window, by.CubaID("loginField")), w.LoginField.By())
	assert.Equal(t, by.Chained(window, by.CubaID("passwordField")), w.PasswordField.By())
	assert.Equal(t, by.Chained(window, by.CubaID("rememberMeCheckBox")), w.RememberMe.By())
	assert.Equal(t, by.Chained(window, by.CSS("div.welcome")), w.Welcome.By())
	assert.Equal(t, by.Path("loginWindow", "loginFormLayout", "loginField"), w.Form.Login.By())
	assert.Nil(t, w.Form.Password)
	require.NotNil(t, w.Deep)
	assert.Equal(t, by.Path("loginWindow", "a", "b", "loginField"), w.Deep.Login.By())
	assert.Nil(t, w.untouched)

	require.NotNil(t, w.handle)
	assert.Equal(t, window, w.handle.Locator())
	assert.Same(t, f.c, w.Components())

	require.NotNil(t, w.log)
	assert.Equal(t, "loginWindow", w.log.Data["component"])
}

func TestWire_ComponentsAreInstrumented(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.driver.Element(by.Path("loginWindow", "loginField"))

	w, err := Wire[*loginWindow](f.c)
	require.NoError(t, err)

	_, raw := w.LoginField.(*components.TextField)
	assert.False(t, raw)

	_, err = w.LoginField.SetValue("masquerade")
	require.NoError(t, err)
	assert.Equal(t, "Set 'value' of 'loginField' to 'masquerade'", f.hook.LastEntry().Message)
}

func TestWire_RootParent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	form, err := Wire[loginForm](f.c)
	require.NoError(t, err)
	assert.Equal(t, by.CubaID("loginField"), form.Login.By())
}

func TestWire_PathTargets(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	w, err := Wire[*loginWindow](f.c, "sec$User.browse")
	require.NoError(t, err)
	assert.Equal(t, by.CubaID("sec$User.browse"), w.By())

	u, err := WirePath[interfaces.Untyped](f.c, "loginFormLayout")
	require.NoError(t, err)
	assert.Equal(t, by.CubaID("loginFormLayout"), u.By())

	b, err := S[interfaces.Button](f.c, by.CSS(".ok"))
	require.NoError(t, err)
	assert.Equal(t, by.CSS(".ok"), b.By())

	handle := f.driver.Element(by.CSS("td"))
	cell, err := WireTarget[interfaces.Label](f.c, handle)
	require.NoError(t, err)
	assert.Same(t, handle, cell.Delegate())

	root, err := Wire[interfaces.Untyped](f.c)
	require.NoError(t, err)
	assert.True(t, by.IsRoot(root.By()))

	byName, err := f.c.WireName("button", "okBtn")
	require.NoError(t, err)
	assert.Implements(t, (*interfaces.Button)(nil), byName)
}

// -----------------------------------------------------------------------------
// schema
// -----------------------------------------------------------------------------

type schemaForm struct {
	Tagged   interfaces.TextField `wire:"fromTag"`
	Declared interfaces.Button
	ByCSS    interfaces.Label
}

func (schemaForm) WireSchema() []FieldSpec {
	return []FieldSpec{
		Nested("Tagged", "fromSchema"),
		Nested("Declared"),
		FindBy("ByCSS", "css=span.caption"),
	}
}

func TestWire_SchemaOverridesTags(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	form, err := Wire[schemaForm](f.c, "form")
	require.NoError(t, err)

	assert.Equal(t, by.Path("form", "fromSchema"), form.Tagged.By())
	assert.Equal(t, by.Path("form", "declared"), form.Declared.By())
	assert.Equal(t, by.Chained(by.CubaID("form"), by.CSS("span.caption")), form.ByCSS.By())
}

type unknownFieldSchema struct{}

func (*unknownFieldSchema) WireSchema() []FieldSpec {
	return []FieldSpec{Nested("Missing")}
}

// -----------------------------------------------------------------------------
// errors
// -----------------------------------------------------------------------------

type badFindBy struct {
	Field interfaces.Button `findby:"shadow=x"`
}

type badNested struct {
	Inner interfaces.Component `wire:""`
}

type wrongFieldType struct {
	Loc string `wire:""`
}

func TestWire_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := Wire[int](f.c)
	var inst *entities.InstantiationError
	require.ErrorAs(t, err, &inst)
	assert.Equal(t, "int", inst.Type)

	_, err = Wire[badFindBy](f.c)
	var inj *entities.FieldInjectionError
	require.ErrorAs(t, err, &inj)
	assert.Equal(t, "Field", inj.Field)

	_, err = Wire[badNested](f.c)
	require.ErrorAs(t, err, &inj)
	assert.Equal(t, "Inner", inj.Field)
	assert.ErrorAs(t, err, &inst)

	_, err = Wire[wrongFieldType](f.c)
	require.ErrorAs(t, err, &inj)

	_, err = Wire[*unknownFieldSchema](f.c)
	require.ErrorAs(t, err, &inj)
	assert.Equal(t, "Missing", inj.Field)

	_, err = f.c.WireType(nil)
	assert.ErrorIs(t, err, entities.ErrNilContract)

	_, err = WireBy[interfaces.Button](f.c, nil)
	assert.ErrorIs(t, err, entities.ErrNilLocator)

	_, err = WireTarget[interfaces.Button](f.c, nil)
	assert.ErrorIs(t, err, entities.ErrNilLocator)

	_, err = Wire[interfaces.Button](f.c, 42)
	assert.ErrorIs(t, err, entities.ErrUnsupportedTarget)

	_, err = f.c.WireName("Spinner")
	assert.Error(t, err)

	assert.Panics(t, func() { MustWire[int](f.c) })
}

func TestWire_FactoryReturningWrongType(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.c.Registry().Register(reflect.TypeFor[interfaces.Table](), func(by.Locator) any { return "not a table" })

	_, err := Wire[interfaces.Table](f.c)
	var cfg *entities.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "interfaces.Table", cfg.Contract)
}

// -----------------------------------------------------------------------------
// registration helpers
// -----------------------------------------------------------------------------

func TestRegister_OverridesDefault(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var got by.Locator
	Register(f.c, func(l by.Locator) interfaces.Table {
		got = l
		return components.NewTable(f.driver, l)
	})

	_, err := WirePath[interfaces.Table](f.c, "usersTable")
	require.NoError(t, err)
	assert.Equal(t, by.CubaID("usersTable"), got)
}

func TestProxy_Instruments(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.driver.Element(by.CubaID("loginButton"))

	raw := components.NewButton(f.driver, by.CubaID("loginButton"))
	b := Proxy[interfaces.Button](f.c, raw)
	assert.NotSame(t, raw, b)

	_, err := b.ShouldBe(entities.Visible)
	require.NoError(t, err)
	assert.Equal(t, "Should be of 'loginButton' with [visible]", f.hook.LastEntry().Message)
}

func TestWire_ConcurrentRegisterAndWire(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, 2*workers)
	for range workers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Register(f.c, func(l by.Locator) interfaces.Button {
				return components.NewButton(f.driver, l)
			})
			_, err := WirePath[interfaces.Button](f.c, "okBtn")
			errs <- err
		}()
		go func() {
			defer wg.Done()
			w, err := Wire[*loginWindow](f.c)
			if err == nil && w.LoginButton == nil {
				err = errNotWired
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	_, ok := f.c.Registry().Lookup(reflect.TypeFor[interfaces.Button]())
	assert.True(t, ok)
}
