package mocks

import (
	"fmt"
	"time"

	"github.com/you/vaultsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc    func(userID uint, email string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a token
func (m *MockTokenService) Issue(userID uint, email string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

// Validate validates a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: valid claims for user 1
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		Email:     "user@example.com",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Ensure MockTokenService implements the interface
var _ domain.TokenService = (*MockTokenService)(nil)
