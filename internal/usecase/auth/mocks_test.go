package auth

import (
	"context"
	"strings"

	domainUser "product-inventory-api/internal/domain/user"
	appErrors "product-inventory-api/pkg/errors"
)

// mockUserRepository is an in-memory stand-in for the postgres repository.
// Lookups only see active users, matching the real implementation.
type mockUserRepository struct {
	users       map[string]*domainUser.User
	nextID      int64
	createCalls int
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:  make(map[string]*domainUser.User),
		nextID: 1,
	}
}

func (m *mockUserRepository) Create(_ context.Context, user *domainUser.User) error {
	m.createCalls++

	if existing, ok := m.users[strings.ToLower(user.Username)]; ok && existing.IsActive {
		return appErrors.ErrUserAlreadyExists
	}

	user.ID = m.nextID
	m.nextID++
	user.IsActive = true
	m.users[strings.ToLower(user.Username)] = user

	return nil
}

func (m *mockUserRepository) GetByUsername(_ context.Context, username string) (*domainUser.User, error) {
	user, ok := m.users[strings.ToLower(username)]
	if !ok || !user.IsActive {
		return nil, appErrors.ErrUserNotFound
	}

	return user, nil
}

func (m *mockUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	user, ok := m.users[strings.ToLower(username)]
	return ok && user.IsActive, nil
}
