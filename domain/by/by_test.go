package by

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Root, Path())
	assert.Equal(t, CubaID("loginField"), Path("loginField"))

	chain, ok := Path("loginForm", "loginField").(Chain)
	require.True(t, ok)
	assert.Equal(t, []Locator{CubaID("loginForm"), CubaID("loginField")}, chain.Parts())
}

func TestChained_Flattens(t *testing.T) {
	t.Parallel()

	l := Chained(Path("a", "b"), Path("c", "d"), CSS("span"))
	chain, ok := l.(Chain)
	require.True(t, ok)

	assert.Len(t, chain.Parts(), 5)
	assert.Equal(t, CSS("span"), chain.Last())
	for _, p := range chain.Parts() {
		_, nested := p.(Chain)
		assert.False(t, nested)
	}
}

func TestChained_SingleReturnsParent(t *testing.T) {
	t.Parallel()

	parent := CubaID("x")
	assert.Equal(t, parent, Chained(parent))
}

func TestChain_PartsIsACopy(t *testing.T) {
	t.Parallel()

	chain := Chained(CubaID("a"), CubaID("b")).(Chain)
	parts := chain.Parts()
	parts[0] = CSS("mutated")

	assert.Equal(t, CubaID("a"), chain.Parts()[0])
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Locator
		want string
	}{
		{"cuba id", CubaID("loginButton"), "loginButton"},
		{"chain uses last", Chained(CubaID("window"), CubaID("okBtn")), "okBtn"},
		{"css", CSS("div.v-popupbutton-popup"), "css: div.v-popupbutton-popup"},
		{"root", Root, "tag: body"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestTarget(t *testing.T) {
	t.Parallel()

	handle := &struct{ name string }{"el"}
	l := Target(handle)

	h, ok := l.(Handle)
	require.True(t, ok)
	assert.Same(t, handle, h.Target())
	assert.False(t, IsRoot(l))
	assert.True(t, IsRoot(Root))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Simple
	}{
		{"css=div.v-table", CSS("div.v-table")},
		{"xpath=//div[@id='x']", XPath("//div[@id='x']")},
		{"id=main", ID("main")},
		{"className=v-button", ClassName("v-button")},
		{"tagName=span", TagName("span")},
		{"name=login", Name("login")},
		{"linkText=Logout", LinkText("Logout")},
		{"cuba=loginField", CubaID("loginField")},
		{"text=Submit", Text("Submit")},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse("nonsense")
	assert.Error(t, err)

	_, err = Parse("shadow=x")
	assert.Error(t, err)
}

// TestChained_TerminalSegmentProperty checks that formatting any chain always
// yields its last simple segment.
func TestChained_TerminalSegmentProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		parentSegs := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-zA-Z0-9$.]{0,10}`), 1, 4).Draw(r, "parent")
		childSegs := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-zA-Z0-9$.]{0,10}`), 1, 4).Draw(r, "child")

		l := Chained(Path(parentSegs...), Path(childSegs...))

		assert.Equal(r, childSegs[len(childSegs)-1], Format(l))

		chain, ok := l.(Chain)
		if !ok {
			r.Fatalf("expected chain, got %T", l)
		}
		assert.Len(r, chain.Parts(), len(parentSegs)+len(childSegs))
	})
}
