package mocks

import (
	"context"

	"github.com/you/vaultsvc/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc          func(ctx context.Context, account *domain.Account) error
	ListByUserFunc      func(ctx context.Context, userID uint) ([]domain.Account, error)
	FindByIDAndUserFunc func(ctx context.Context, id, userID uint) (*domain.Account, error)
	UpdateFunc          func(ctx context.Context, account *domain.Account) (int64, error)
	DeleteFunc          func(ctx context.Context, id, userID uint) (int64, error)
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

// ListByUser lists all accounts owned by a user
func (m *MockAccountRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Account, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// FindByIDAndUser finds an account by ID scoped to its owner
func (m *MockAccountRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*domain.Account, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrResourceNotFound
}

// Update updates an account, returning the number of affected rows
func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return 1, nil
}

// Delete deletes an account, returning the number of affected rows
func (m *MockAccountRepository) Delete(ctx context.Context, id, userID uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return 1, nil
}

// Ensure MockAccountRepository implements the interface
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
