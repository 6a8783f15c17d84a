package mocks

import (
	"github.com/you/vaultsvc/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: stable fake digest
	return "hashed:" + password, nil
}

// Verify checks a password against a digest
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed:"+password
}

// Ensure MockPasswordService implements the interface
var _ domain.PasswordService = (*MockPasswordService)(nil)
