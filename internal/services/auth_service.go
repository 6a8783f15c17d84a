package services

import (
	"context"
	"fmt"
	"log"

	"github.com/you/vaultsvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo            domain.UserRepository
	otpRepo             domain.OTPRepository
	passwordSvc         domain.PasswordService
	tokenSvc            domain.TokenService
	otpSvc              domain.OTPService
	defaultProfileImage string
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	otpRepo domain.OTPRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	defaultProfileImage string,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:            userRepo,
		otpRepo:             otpRepo,
		passwordSvc:         passwordSvc,
		tokenSvc:            tokenSvc,
		otpSvc:              otpSvc,
		defaultProfileImage: defaultProfileImage,
	}
}

// RequestRegistrationOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestRegistrationOTP(ctx context.Context, email string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && err != domain.ErrUserNotFound {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return domain.ErrEmailTaken
	}

	return s.otpSvc.SendRegistrationCode(ctx, email)
}

// RequestPasswordResetOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestPasswordResetOTP(ctx context.Context, email string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	return s.otpSvc.SendPasswordResetCode(ctx, email)
}

// Register implements domain.AuthService. The issued token is persisted as
// the user's active session token, so the client can use it immediately.
func (s *AuthServiceImpl) Register(ctx context.Context, reg *domain.Registration) (string, error) {
	if err := s.otpSvc.Verify(ctx, reg.Email, reg.Code); err != nil {
		return "", err
	}

	// The email could have been registered between OTP issuance and now.
	existing, err := s.userRepo.FindByEmail(ctx, reg.Email)
	if err != nil && err != domain.ErrUserNotFound {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return "", domain.ErrEmailTaken
	}

	hash, err := s.passwordSvc.Hash(reg.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        reg.Email,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		MiddleName:   reg.MiddleName,
		LastName:     reg.LastName,
		ProfileImage: s.defaultProfileImage,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otpRepo.DeleteByEmail(ctx, reg.Email); err != nil {
		log.Printf("failed to delete otp after registration for %s: %v", reg.Email, err)
	}

	token, err := s.tokenSvc.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.userRepo.UpdateSessionToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	return token, nil
}

// VerifyPasswordResetOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyPasswordResetOTP(ctx context.Context, email, code string) error {
	if err := s.otpSvc.Verify(ctx, email, code); err != nil {
		return err
	}

	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		log.Printf("failed to delete otp after reset verification for %s: %v", email, err)
	}

	return nil
}

// ResetPassword implements domain.AuthService. Clearing the session token
// forces a fresh login everywhere; a failure to clear is logged only.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, newPassword string) error {
	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.userRepo.ClearSessionTokenByEmail(ctx, email); err != nil {
		log.Printf("failed to clear session token after password reset for %s: %v", email, err)
	}

	return nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// answer identically.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	// Single active session: this overwrite revokes every earlier token.
	if err := s.userRepo.UpdateSessionToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	return token, nil
}

// Logout implements domain.AuthService. Clearing an already-clear token is
// harmless, so logout is idempotent.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID uint) error {
	if err := s.userRepo.UpdateSessionToken(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// VerifyPassword implements domain.AuthService
func (s *AuthServiceImpl) VerifyPassword(ctx context.Context, userID uint, password string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return domain.ErrWrongPassword
	}
	return nil
}

// ChangePassword implements domain.AuthService. The new token replaces the
// stored one, revoking the token the request arrived with; the caller gets
// the new token so it can continue without logging in again.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID uint, email, currentPassword, newPassword string) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, currentPassword) {
		return "", domain.ErrWrongPassword
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordByID(ctx, userID, hash); err != nil {
		return "", fmt.Errorf("failed to update password: %w", err)
	}

	token, err := s.tokenSvc.Issue(userID, email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.userRepo.UpdateSessionToken(ctx, userID, token); err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	return token, nil
}
