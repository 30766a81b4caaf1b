package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"paytrack/internal/model"
)

// UserDraft carries the fields needed to create an account.
type UserDraft struct {
	Username    string
	Password    string
	Permissions model.Permissions
}

// UserStore owns the account collection and enforces the self-protection
// rules: a user can neither delete their own account nor strip their own
// user-management capability.
type UserStore struct {
	users []model.User
	mu    sync.Mutex
}

// NewUserStore creates a store holding the given users.
func NewUserStore(users []model.User) *UserStore {
	s := &UserStore{users: make([]model.User, len(users))}
	copy(s.users, users)
	return s
}

// Users returns a snapshot of all accounts.
func (s *UserStore) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Authenticate finds the account matching both username and password exactly.
// This is the sole entry point from the login collaborator.
func (s *UserStore) Authenticate(username, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// AddUser creates a new account with a fresh id. Usernames are unique,
// compared case-sensitively. Requires the manage-users permission.
func (s *UserStore) AddUser(draft UserDraft, actor model.User) (model.User, error) {
	if !actor.Permissions.ManageUsers {
		return model.User{}, fmt.Errorf("%w: manage users", ErrPermissionDenied)
	}
	if strings.TrimSpace(draft.Username) == "" || draft.Password == "" {
		return model.User{}, fmt.Errorf("username and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == draft.Username {
			return model.User{}, fmt.Errorf("%w: %s", ErrDuplicateUsername, draft.Username)
		}
	}

	u := model.User{
		ID:          uuid.NewString(),
		Username:    draft.Username,
		Password:    draft.Password,
		Permissions: draft.Permissions,
	}
	s.users = append(s.users, u)
	return u, nil
}

// RemoveUser deletes an account. Requires the manage-users permission; the
// acting user's own account is protected.
func (s *UserStore) RemoveUser(id string, actor model.User) error {
	if !actor.Permissions.ManageUsers {
		return fmt.Errorf("%w: manage users", ErrPermissionDenied)
	}
	if id == actor.ID {
		return ErrSelfDeletion
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", ErrNotFound, id)
}

// UpdatePermissions replaces an account's permission set. Requires the
// manage-users permission; the acting user cannot revoke their own.
func (s *UserStore) UpdatePermissions(id string, perms model.Permissions, actor model.User) error {
	if !actor.Permissions.ManageUsers {
		return fmt.Errorf("%w: manage users", ErrPermissionDenied)
	}
	if id == actor.ID && !perms.ManageUsers {
		return ErrSelfLockout
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Permissions = perms
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", ErrNotFound, id)
}
