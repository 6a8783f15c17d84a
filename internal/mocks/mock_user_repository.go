package mocks

import (
	"context"

	"github.com/you/vaultsvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                   func(ctx context.Context, user *domain.User) error
	FindByEmailFunc              func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc                 func(ctx context.Context, id uint) (*domain.User, error)
	FindByIDAndTokenFunc         func(ctx context.Context, id uint, token string) (*domain.User, error)
	UpdateProfileFunc            func(ctx context.Context, id uint, firstName, middleName, lastName, email string) error
	UpdatePasswordByIDFunc       func(ctx context.Context, id uint, passwordHash string) error
	UpdatePasswordByEmailFunc    func(ctx context.Context, email, passwordHash string) error
	UpdateSessionTokenFunc       func(ctx context.Context, id uint, token string) error
	ClearSessionTokenByEmailFunc func(ctx context.Context, email string) error
	UpdateProfileImageFunc       func(ctx context.Context, id uint, image string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByIDAndToken finds a user by ID and active session token
func (m *MockUserRepository) FindByIDAndToken(ctx context.Context, id uint, token string) (*domain.User, error) {
	if m.FindByIDAndTokenFunc != nil {
		return m.FindByIDAndTokenFunc(ctx, id, token)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile updates profile fields
func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, firstName, middleName, lastName, email string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, firstName, middleName, lastName, email)
	}
	return nil
}

// UpdatePasswordByID updates the password hash by user ID
func (m *MockUserRepository) UpdatePasswordByID(ctx context.Context, id uint, passwordHash string) error {
	if m.UpdatePasswordByIDFunc != nil {
		return m.UpdatePasswordByIDFunc(ctx, id, passwordHash)
	}
	return nil
}

// UpdatePasswordByEmail updates the password hash by email
func (m *MockUserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordByEmailFunc != nil {
		return m.UpdatePasswordByEmailFunc(ctx, email, passwordHash)
	}
	return nil
}

// UpdateSessionToken sets or clears the active session token
func (m *MockUserRepository) UpdateSessionToken(ctx context.Context, id uint, token string) error {
	if m.UpdateSessionTokenFunc != nil {
		return m.UpdateSessionTokenFunc(ctx, id, token)
	}
	return nil
}

// ClearSessionTokenByEmail clears the active session token by email
func (m *MockUserRepository) ClearSessionTokenByEmail(ctx context.Context, email string) error {
	if m.ClearSessionTokenByEmailFunc != nil {
		return m.ClearSessionTokenByEmailFunc(ctx, email)
	}
	return nil
}

// UpdateProfileImage updates the profile image reference
func (m *MockUserRepository) UpdateProfileImage(ctx context.Context, id uint, image string) error {
	if m.UpdateProfileImageFunc != nil {
		return m.UpdateProfileImageFunc(ctx, id, image)
	}
	return nil
}

// Ensure MockUserRepository implements the interface
var _ domain.UserRepository = (*MockUserRepository)(nil)
