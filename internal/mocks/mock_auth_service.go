package mocks

import (
	"context"

	"github.com/you/vaultsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RequestRegistrationOTPFunc  func(ctx context.Context, email string) error
	RequestPasswordResetOTPFunc func(ctx context.Context, email string) error
	RegisterFunc                func(ctx context.Context, reg *domain.Registration) (string, error)
	VerifyPasswordResetOTPFunc  func(ctx context.Context, email, code string) error
	ResetPasswordFunc           func(ctx context.Context, email, newPassword string) error
	LoginFunc                   func(ctx context.Context, email, password string) (string, error)
	LogoutFunc                  func(ctx context.Context, userID uint) error
	VerifyPasswordFunc          func(ctx context.Context, userID uint, password string) error
	ChangePasswordFunc          func(ctx context.Context, userID uint, email, currentPassword, newPassword string) (string, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// RequestRegistrationOTP requests a registration code
func (m *MockAuthService) RequestRegistrationOTP(ctx context.Context, email string) error {
	if m.RequestRegistrationOTPFunc != nil {
		return m.RequestRegistrationOTPFunc(ctx, email)
	}
	return nil
}

// RequestPasswordResetOTP requests a password reset code
func (m *MockAuthService) RequestPasswordResetOTP(ctx context.Context, email string) error {
	if m.RequestPasswordResetOTPFunc != nil {
		return m.RequestPasswordResetOTPFunc(ctx, email)
	}
	return nil
}

// Register registers a user after code verification
func (m *MockAuthService) Register(ctx context.Context, reg *domain.Registration) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	return "registered-token", nil
}

// VerifyPasswordResetOTP verifies a password reset code
func (m *MockAuthService) VerifyPasswordResetOTP(ctx context.Context, email, code string) error {
	if m.VerifyPasswordResetOTPFunc != nil {
		return m.VerifyPasswordResetOTPFunc(ctx, email, code)
	}
	return nil
}

// ResetPassword sets a new password
func (m *MockAuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, newPassword)
	}
	return nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "login-token", nil
}

// Logout clears the active session
func (m *MockAuthService) Logout(ctx context.Context, userID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

// VerifyPassword checks a user's current password
func (m *MockAuthService) VerifyPassword(ctx context.Context, userID uint, password string) error {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(ctx, userID, password)
	}
	return nil
}

// ChangePassword rotates a user's password
func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, email, currentPassword, newPassword string) (string, error) {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, email, currentPassword, newPassword)
	}
	return "changed-token", nil
}

// Ensure MockAuthService implements the interface
var _ domain.AuthService = (*MockAuthService)(nil)
