package mocks

import (
	"context"

	"github.com/you/vaultsvc/domain"
)

// MockItemRepository implements domain.ItemRepository interface for testing
type MockItemRepository struct {
	CreateFunc     func(ctx context.Context, item *domain.Item) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]domain.Item, error)
	UpdateFunc     func(ctx context.Context, item *domain.Item) (int64, error)
	DeleteFunc     func(ctx context.Context, id, userID uint) (int64, error)
}

// NewMockItemRepository creates a new MockItemRepository with default behaviors
func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{}
}

// Create creates a new item
func (m *MockItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

// ListByUser lists all items owned by a user
func (m *MockItemRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Item, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// Update updates an item, returning the number of affected rows
func (m *MockItemRepository) Update(ctx context.Context, item *domain.Item) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return 1, nil
}

// Delete deletes an item, returning the number of affected rows
func (m *MockItemRepository) Delete(ctx context.Context, id, userID uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return 1, nil
}

// Ensure MockItemRepository implements the interface
var _ domain.ItemRepository = (*MockItemRepository)(nil)
