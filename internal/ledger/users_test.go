package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrack/internal/model"
)

func TestUserStore_Authenticate(t *testing.T) {
	store := NewUserStore([]model.User{
		{ID: "u1", Username: "ayse", Password: "secret"},
	})

	u, err := store.Authenticate("ayse", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = store.Authenticate("ayse", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.Authenticate("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserStore_AddUser(t *testing.T) {
	store := NewUserStore(nil)
	actor := fullActor()

	u, err := store.AddUser(UserDraft{
		Username:    "ayse",
		Password:    "secret",
		Permissions: model.Permissions{Add: true},
	}, actor)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.True(t, u.Permissions.Add)
	assert.False(t, u.Permissions.ManageUsers)
}

func TestUserStore_AddUserDuplicate(t *testing.T) {
	store := NewUserStore([]model.User{{ID: "u1", Username: "ayse", Password: "x"}})

	_, err := store.AddUser(UserDraft{Username: "ayse", Password: "y"}, fullActor())
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// Usernames compare case-sensitively.
	_, err = store.AddUser(UserDraft{Username: "Ayse", Password: "y"}, fullActor())
	assert.NoError(t, err)
}

func TestUserStore_AddUserRequiresFields(t *testing.T) {
	store := NewUserStore(nil)

	_, err := store.AddUser(UserDraft{Username: "  ", Password: "x"}, fullActor())
	assert.Error(t, err)

	_, err = store.AddUser(UserDraft{Username: "ayse", Password: ""}, fullActor())
	assert.Error(t, err)
}

func TestUserStore_AddUserPermissionDenied(t *testing.T) {
	store := NewUserStore(nil)
	actor := fullActor()
	actor.Permissions.ManageUsers = false

	_, err := store.AddUser(UserDraft{Username: "ayse", Password: "x"}, actor)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUserStore_RemoveUser(t *testing.T) {
	actor := fullActor()
	store := NewUserStore([]model.User{
		{ID: actor.ID, Username: "admin"},
		{ID: "u2", Username: "ayse"},
	})

	require.NoError(t, store.RemoveUser("u2", actor))
	assert.Len(t, store.Users(), 1)

	err := store.RemoveUser("u2", actor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_RemoveUserSelfDeletion(t *testing.T) {
	actor := fullActor()
	store := NewUserStore([]model.User{{ID: actor.ID, Username: "admin"}})

	err := store.RemoveUser(actor.ID, actor)
	assert.ErrorIs(t, err, ErrSelfDeletion)
	assert.Len(t, store.Users(), 1)
}

func TestUserStore_UpdatePermissions(t *testing.T) {
	actor := fullActor()
	store := NewUserStore([]model.User{
		{ID: actor.ID, Username: "admin", Permissions: model.AllPermissions()},
		{ID: "u2", Username: "ayse"},
	})

	perms := model.Permissions{Add: true, ChangeStatus: true}
	require.NoError(t, store.UpdatePermissions("u2", perms, actor))

	users := store.Users()
	for _, u := range users {
		if u.ID == "u2" {
			assert.Equal(t, perms, u.Permissions)
		}
	}
}

func TestUserStore_UpdatePermissionsSelfLockout(t *testing.T) {
	actor := fullActor()
	store := NewUserStore([]model.User{
		{ID: actor.ID, Username: "admin", Permissions: model.AllPermissions()},
	})

	// Dropping your own manage-users capability is refused.
	err := store.UpdatePermissions(actor.ID, model.Permissions{Add: true}, actor)
	assert.ErrorIs(t, err, ErrSelfLockout)

	// Any change keeping it is fine.
	err = store.UpdatePermissions(actor.ID, model.Permissions{ManageUsers: true}, actor)
	assert.NoError(t, err)
}
