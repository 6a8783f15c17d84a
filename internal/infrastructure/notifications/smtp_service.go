package notifications

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/you/vaultsvc/domain"
)

// SMTPServiceImpl implements domain.Mailer
type SMTPServiceImpl struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	senderName string
}

// NewSMTPService creates a new SMTP mail service
func NewSMTPService(host string, port int, username, password, from, senderName string) domain.Mailer {
	return &SMTPServiceImpl{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		senderName: senderName,
	}
}

// Send implements domain.Mailer
func (s *SMTPServiceImpl) Send(to, subject, body string) error {
	// If the transport is not configured, log instead of sending
	if s.host == "" {
		log.Printf("[MOCK MAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
