package components

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
	"masquerade/infrastructure/browser"
	"masquerade/infrastructure/browser/browsertest"
)

func captionLoc(loc by.Locator, class string) by.Locator {
	return by.Chained(loc, by.ClassName(class))
}

// -----------------------------------------------------------------------------
// Button
// -----------------------------------------------------------------------------

func TestButton_CaptionAndClick(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("loginButton")
	el := d.Element(loc).WithClass("v-button")
	d.Element(captionLoc(loc, ButtonCaptionClass)).WithText("Submit")

	b := NewButton(d, loc)

	caption, err := b.Caption()
	require.NoError(t, err)
	assert.Equal(t, "Submit", caption)

	self, err := b.ShouldBe(entities.Visible, entities.Enabled)
	require.NoError(t, err)
	assert.Same(t, b, self)

	_, err = b.ShouldHave(entities.Caption("Submit"))
	require.NoError(t, err)

	_, err = b.ShouldNotHave(entities.Caption("Cancel"))
	require.NoError(t, err)

	ok, err := b.Has(entities.Caption("Cancel"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = b.Click()
	require.NoError(t, err)
	assert.Equal(t, 1, el.Clicks())
}

func TestButton_DisabledClass(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("okBtn")
	el := d.Element(loc).WithClass("v-button", DisabledClass)

	b := NewButton(d, loc)

	enabled, err := b.Is(entities.Enabled)
	require.NoError(t, err)
	assert.False(t, enabled)

	disabled, err := b.Is(entities.Disabled)
	require.NoError(t, err)
	assert.True(t, disabled)

	_, err = b.ShouldBe(entities.Disabled)
	require.NoError(t, err)

	_, err = b.ShouldBe(entities.Enabled)
	assert.ErrorIs(t, err, browser.ErrConditionNotMet)

	_, err = b.Click()
	assert.ErrorIs(t, err, browser.ErrConditionNotMet)
	assert.Zero(t, el.Clicks())

	el.WithoutClass(DisabledClass)
	_, err = b.ShouldNotBe(entities.Disabled)
	require.NoError(t, err)
}

// -----------------------------------------------------------------------------
// Inputs
// -----------------------------------------------------------------------------

func TestTextField_SetValue(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.Path("loginWindow", "loginField")
	d.Element(loc)

	f := NewTextField(d, loc)
	self, err := f.SetValue("masquerade")
	require.NoError(t, err)
	assert.Same(t, f, self)

	value, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, "masquerade", value)

	_, err = f.ShouldHave(entities.Value("masquerade"))
	require.NoError(t, err)
	_, err = f.ShouldBe(entities.Editable, entities.Enabled)
	require.NoError(t, err)
}

func TestPasswordField_Readonly(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("passwordField")
	d.Element(loc).WithEditable(false)

	f := NewPasswordField(d, loc)
	_, err := f.ShouldBe(entities.Readonly)
	require.NoError(t, err)

	_, err = f.SetValue("rulezzz")
	assert.ErrorIs(t, err, browser.ErrConditionNotMet)
}

func TestCheckBox(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("rememberMeCheckBox")
	d.Element(loc)
	input := d.Element(by.Chained(loc, by.TagName("input")))
	input.OnClick = func(e *browsertest.Element) {
		checked, _ := e.Checked()
		e.WithChecked(!checked)
	}
	d.Element(by.Chained(loc, by.TagName("label"))).WithText("Remember me")

	cb := NewCheckBox(d, loc)

	_, err := cb.SetChecked(true)
	require.NoError(t, err)
	_, err = cb.SetChecked(true)
	require.NoError(t, err)
	assert.Equal(t, 1, input.Clicks())

	checked, err := cb.Checked()
	require.NoError(t, err)
	assert.True(t, checked)

	_, err = cb.ShouldBe(entities.Checked)
	require.NoError(t, err)

	caption, err := cb.Caption()
	require.NoError(t, err)
	assert.Equal(t, "Remember me", caption)

	_, err = cb.ShouldHave(entities.Caption("Remember me"))
	require.NoError(t, err)
}

func TestLookupField_PicksSuggestion(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("localesSelect")
	d.Element(loc)
	d.Element(by.Chained(loc, by.TagName("input")))
	option := d.Element(by.Chained(by.CSS(SuggestPopupCSS), by.Text("English")))

	l := NewLookupField(d, loc)
	_, err := l.SetValue("English")
	require.NoError(t, err)
	assert.Equal(t, 1, option.Clicks())

	_, err = l.ShouldHave(entities.Value("English"))
	require.NoError(t, err)
}

func TestLabel_Value(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("welcomeLabel")
	d.Element(loc).WithText("Welcome to CUBA!")

	l := NewLabel(d, loc)
	value, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "Welcome to CUBA!", value)

	_, err = l.ShouldHave(entities.Value("Welcome to CUBA!"))
	require.NoError(t, err)
	_, err = l.ShouldNotHave(entities.Value("Bye"))
	require.NoError(t, err)
}

// -----------------------------------------------------------------------------
// Containers
// -----------------------------------------------------------------------------

func TestTable(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("usersTable")
	d.Element(loc)
	rows := by.Chained(loc, by.CSS(TableRowCSS))
	d.SetAll(rows, d.Element(by.CSS("tr#1")), d.Element(by.CSS("tr#2")))
	cell := d.Element(by.Chained(loc, by.ClassName(TableBodyClass), by.Text("admin")))

	tbl := NewTable(d, loc)
	count, err := tbl.RowCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = tbl.SelectRow("admin")
	require.NoError(t, err)
	assert.Equal(t, 1, cell.Clicks())

	_, err = tbl.SelectRow("nobody")
	assert.Error(t, err)
}

func TestGroupBox_Caption(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("filterBox")
	d.Element(loc)
	d.Element(captionLoc(loc, PanelCaptionClass)).WithText("Filter")

	g := NewGroupBox(d, loc)
	caption, err := g.Caption()
	require.NoError(t, err)
	assert.Equal(t, "Filter", caption)

	_, err = g.ShouldHave(entities.Caption("Filter"))
	require.NoError(t, err)
}

// -----------------------------------------------------------------------------
// PopupButton
// -----------------------------------------------------------------------------

func TestPopupButton_Select(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("actionsButton")
	button := d.Element(loc)

	popup := by.CSS(PopupContentCSS)
	d.Element(popup)
	optionButton := d.Element(by.Chained(popup, by.TagName("span"), by.Text("Remove"),
		browsertest.ParentStep, browsertest.ParentStep))
	captions := by.Chained(popup, by.TagName("span"), by.ClassName(ButtonCaptionClass))
	d.SetAll(captions,
		d.Element(by.CSS("span#create")).WithText("Create"),
		d.Element(by.CSS("span#remove")).WithText("Remove"))

	p := NewPopupButton(d, loc)

	self, err := p.Click("Remove")
	require.NoError(t, err)
	assert.Same(t, p, self)
	assert.Equal(t, 1, button.Clicks())
	assert.Equal(t, 1, optionButton.Clicks())

	content, err := p.PopupContent()
	require.NoError(t, err)
	assert.Equal(t, popup, content.By())

	element, ok := content.(interfaces.Element)
	require.True(t, ok)
	assert.Equal(t, "popupContent", element.LoggingID())
	assert.Same(t, p, element.Parent())

	options, err := content.Options()
	require.NoError(t, err)
	assert.Equal(t, []string{"Create", "Remove"}, options)
}

func TestPopupButton_HiddenPopup(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	loc := by.CubaID("actionsButton")
	d.Element(loc)

	_, err := NewPopupButton(d, loc).OpenPopupContent()
	assert.ErrorIs(t, err, browser.ErrConditionNotMet)
}

// -----------------------------------------------------------------------------
// DefaultConfig
// -----------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	d := browsertest.NewDriver()
	m, err := DefaultConfig{}.Components(d)
	require.NoError(t, err)
	assert.Len(t, m, 10)

	for contract, factory := range m {
		v := factory(by.CubaID("x"))
		assert.True(t, reflect.TypeOf(v).Implements(contract), "%T does not implement %s", v, contract)
	}
}
