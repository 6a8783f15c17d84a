package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/you/vaultsvc/domain"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	otpRepo domain.OTPRepository
	mailer  domain.Mailer
	config  OTPConfig
}

type OTPConfig struct {
	TTL time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(otpRepo domain.OTPRepository, mailer domain.Mailer, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		otpRepo: otpRepo,
		mailer:  mailer,
		config:  config,
	}
}

// SendRegistrationCode implements domain.OTPService
func (s *OTPServiceImpl) SendRegistrationCode(ctx context.Context, email string) error {
	subject := "Your OTP for Registration"
	body := func(code string) string {
		return fmt.Sprintf("Your One-Time Password (OTP) is: %s. It is valid for %d minutes. Do not share this with anyone.",
			code, int(s.config.TTL.Minutes()))
	}
	return s.send(ctx, email, subject, body)
}

// SendPasswordResetCode implements domain.OTPService
func (s *OTPServiceImpl) SendPasswordResetCode(ctx context.Context, email string) error {
	subject := "Password Reset OTP"
	body := func(code string) string {
		return fmt.Sprintf("Your One-Time Password (OTP) for password reset is: %s. It is valid for %d minutes. Do not share this with anyone.",
			code, int(s.config.TTL.Minutes()))
	}
	return s.send(ctx, email, subject, body)
}

func (s *OTPServiceImpl) send(ctx context.Context, email, subject string, body func(code string) string) error {
	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	record := &domain.OTPRecord{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}
	if err := s.otpRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.mailer.Send(email, subject, body(code)); err != nil {
		// The stored code is useless if the mail never left; drop it.
		if delErr := s.otpRepo.DeleteByEmail(ctx, email); delErr != nil {
			log.Printf("failed to delete otp after mailer failure for %s: %v", email, delErr)
		}
		return fmt.Errorf("%w: %v", domain.ErrMailerFailure, err)
	}

	return nil
}

// Verify implements domain.OTPService. The code comparison happens before
// the expiry check; an expired record is deleted as a side effect. The
// record is left in place on success so the caller can consume it after its
// own follow-up work succeeds.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) error {
	record, err := s.otpRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrOTPNotFound {
			return domain.ErrOTPNotFound
		}
		return fmt.Errorf("failed to look up otp: %w", err)
	}

	if record.Code != code {
		return domain.ErrOTPInvalid
	}

	if time.Now().After(record.ExpiresAt) {
		if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
			log.Printf("failed to delete expired otp for %s: %v", email, err)
		}
		return domain.ErrOTPExpired
	}

	return nil
}

// generateCode produces a 6-digit code uniformly in [100000, 999999].
func (s *OTPServiceImpl) generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
