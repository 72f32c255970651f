package wiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masquerade/domain/by"
	"masquerade/domain/interfaces"
)

type userBrowse struct {
	Composite
	UsersTable interfaces.Table `wire:""`
}

func TestComposite_Create(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	u, err := Wire[userBrowse](f.c, "sec$User.browse")
	require.NoError(t, err)

	require.NotNil(t, u.UsersTable)
	assert.Equal(t, by.Path("sec$User.browse", "usersTable"), u.UsersTable.By())
	assert.Equal(t, by.CubaID("sec$User.browse"), u.By())
	require.NotNil(t, u.Delegate())
}

func TestComposite_Child(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	u, err := Wire[*userBrowse](f.c, "sec$User.browse")
	require.NoError(t, err)

	filter, err := Child[interfaces.TextField](u, "filterTextField")
	require.NoError(t, err)
	assert.Equal(t, by.Path("sec$User.browse", "filterTextField"), filter.By())

	root, err := Wire[userBrowse](f.c)
	require.NoError(t, err)
	filter, err = Child[interfaces.TextField](root, "filterTextField")
	require.NoError(t, err)
	assert.Equal(t, by.CubaID("filterTextField"), filter.By())
}

func TestComposite_ActAs(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	u, err := Wire[userBrowse](f.c, "sec$User.browse")
	require.NoError(t, err)

	box, err := ActAs[interfaces.GroupBox](u)
	require.NoError(t, err)
	assert.Equal(t, u.By(), box.By())

	same, err := Child[interfaces.GroupBox](u)
	require.NoError(t, err)
	assert.Equal(t, u.By(), same.By())
}

func TestComposite_NotWired(t *testing.T) {
	t.Parallel()

	_, err := Child[interfaces.Button](userBrowse{}, "ok")
	assert.ErrorIs(t, err, errNotWired)

	_, err = ActAs[interfaces.Button](&userBrowse{})
	assert.ErrorIs(t, err, errNotWired)
}
