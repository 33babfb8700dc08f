package service

import (
	"context"
	"time"

	"github.com/avkhamov/userhub/internal/store"
	"github.com/avkhamov/userhub/models"
)

// mockUserRepository implements store.UserRepository with overridable
// function fields. Methods without an override fail the contract by
// returning store.ErrNoUserWasFound so tests notice unexpected calls.
type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findUserByIDFunc    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFunc   func(ctx context.Context, userID int64, fullName, email string) (models.User, error)
	updatePasswordFunc  func(ctx context.Context, userID int64, passwordHash string) error
	updateRoleFunc      func(ctx context.Context, userID int64, role models.Role) (models.User, error)
	updateStatusFunc    func(ctx context.Context, userID int64, status models.Status) (models.User, error)
	updateLastLoginFunc func(ctx context.Context, userID int64, at time.Time) error
	listUsersFunc       func(ctx context.Context, limit, offset int) ([]models.User, error)
	countUsersFunc      func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, user)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFunc != nil {
		return m.findUserByEmailFunc(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFunc != nil {
		return m.findUserByIDFunc(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, fullName, email string) (models.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, userID, fullName, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, userID, passwordHash)
	}
	return store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, userID int64, role models.Role) (models.User, error) {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, userID, role)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateStatus(ctx context.Context, userID int64, status models.Status) (models.User, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, userID, status)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	if m.updateLastLoginFunc != nil {
		return m.updateLastLoginFunc(ctx, userID, at)
	}
	return nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	if m.countUsersFunc != nil {
		return m.countUsersFunc(ctx)
	}
	return 0, nil
}
