package mocks

import (
	"github.com/you/vaultsvc/domain"
)

// SentMail records one outbound message
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendFunc func(to, subject, body string) error

	// Sent collects every delivered message when SendFunc is nil
	Sent []SentMail
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send delivers a message
func (m *MockMailer) Send(to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, body)
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// Ensure MockMailer implements the interface
var _ domain.Mailer = (*MockMailer)(nil)
