package mocks

import (
	"context"

	"github.com/you/vaultsvc/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	SendRegistrationCodeFunc  func(ctx context.Context, email string) error
	SendPasswordResetCodeFunc func(ctx context.Context, email string) error
	VerifyFunc                func(ctx context.Context, email, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// SendRegistrationCode issues a registration code
func (m *MockOTPService) SendRegistrationCode(ctx context.Context, email string) error {
	if m.SendRegistrationCodeFunc != nil {
		return m.SendRegistrationCodeFunc(ctx, email)
	}
	return nil
}

// SendPasswordResetCode issues a password reset code
func (m *MockOTPService) SendPasswordResetCode(ctx context.Context, email string) error {
	if m.SendPasswordResetCodeFunc != nil {
		return m.SendPasswordResetCodeFunc(ctx, email)
	}
	return nil
}

// Verify checks a code for an email
func (m *MockOTPService) Verify(ctx context.Context, email, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	return nil
}

// Ensure MockOTPService implements the interface
var _ domain.OTPService = (*MockOTPService)(nil)
