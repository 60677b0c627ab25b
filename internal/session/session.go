// Package session holds the authenticated-user state. It is an explicit
// object rather than a process-wide singleton so tests can construct
// isolated sessions.
package session

import (
	"context"

	"github.com/Thecodingpm/calories-counterr/internal/apperrors"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/storage"
)

// Manager persists {token, user} session records so a session survives
// process restarts. Missing or corrupt records read as logged out.
type Manager struct {
	store storage.Store
	auth  domain.AuthService
}

func NewManager(store storage.Store, auth domain.AuthService) *Manager {
	return &Manager{store: store, auth: auth}
}

// Restore returns the user for a previously issued token, or nil when the
// record is missing, corrupt or inconsistent. Partial state is cleared.
func (m *Manager) Restore(ctx context.Context, token string) (*domain.User, error) {
	rec, err := storage.LoadRecord[domain.SessionRecord](ctx, m.store, storage.SessionKey(token))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if rec.Token != token || rec.User.ID == "" {
		_ = m.store.Delete(ctx, storage.SessionKey(token))
		return nil, nil
	}
	user := rec.User
	return &user, nil
}

// Register creates an account and opens a session. A nil result with nil
// error means the email is already taken; state is left unchanged.
func (m *Manager) Register(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	res, err := m.auth.RegisterUser(ctx, email, password)
	if err != nil || res == nil {
		return nil, err
	}
	if err := m.persist(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Login authenticates and opens a session. A nil result with nil error
// means invalid credentials; state is left unchanged.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	res, err := m.auth.LoginUser(ctx, email, password)
	if err != nil || res == nil {
		return nil, err
	}
	if err := m.persist(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Logout deletes the durable session record for the token.
func (m *Manager) Logout(ctx context.Context, token string) error {
	return m.store.Delete(ctx, storage.SessionKey(token))
}

// UpdateGoal replaces the session user's daily calorie goal and propagates
// it to the canonical user record, so a fresh login sees the new value.
func (m *Manager) UpdateGoal(ctx context.Context, token string, goal float64) (*domain.User, error) {
	user, err := m.Restore(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	updated, err := m.auth.UpdateGoal(ctx, user.ID, goal)
	if err != nil {
		return nil, err
	}

	rec := domain.SessionRecord{Token: token, User: *updated}
	if err := storage.SaveRecord(ctx, m.store, storage.SessionKey(token), rec); err != nil {
		return nil, err
	}
	return updated, nil
}

func (m *Manager) persist(ctx context.Context, res *domain.AuthResult) error {
	rec := domain.SessionRecord{Token: res.Token, User: res.User}
	return storage.SaveRecord(ctx, m.store, storage.SessionKey(res.Token), rec)
}
