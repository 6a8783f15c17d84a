package mocks

import (
	"context"

	"github.com/you/vaultsvc/domain"
)

// MockOTPRepository implements domain.OTPRepository interface for testing
type MockOTPRepository struct {
	UpsertFunc        func(ctx context.Context, record *domain.OTPRecord) error
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.OTPRecord, error)
	DeleteByEmailFunc func(ctx context.Context, email string) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

// Upsert stores or replaces a code record
func (m *MockOTPRepository) Upsert(ctx context.Context, record *domain.OTPRecord) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, record)
	}
	return nil
}

// FindByEmail retrieves the record for an email
func (m *MockOTPRepository) FindByEmail(ctx context.Context, email string) (*domain.OTPRecord, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrOTPNotFound
}

// DeleteByEmail deletes the record for an email
func (m *MockOTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFunc != nil {
		return m.DeleteByEmailFunc(ctx, email)
	}
	return nil
}

// Ensure MockOTPRepository implements the interface
var _ domain.OTPRepository = (*MockOTPRepository)(nil)
