package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/mocks"
)

const testDefaultProfileImage = "https://blob.test/object/public/test-bucket/defaults/profile.png"

type authServiceFixture struct {
	userRepo    *mocks.MockUserRepository
	otpRepo     *mocks.MockOTPRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	otpSvc      *mocks.MockOTPService
	svc         domain.AuthService
}

func newAuthServiceFixture() *authServiceFixture {
	f := &authServiceFixture{
		userRepo:    mocks.NewMockUserRepository(),
		otpRepo:     mocks.NewMockOTPRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		otpSvc:      mocks.NewMockOTPService(),
	}
	f.svc = NewAuthService(f.userRepo, f.otpRepo, f.passwordSvc, f.tokenSvc, f.otpSvc, testDefaultProfileImage)
	return f
}

func TestAuthService_RequestRegistrationOTP(t *testing.T) {
	t.Run("new email sends a code", func(t *testing.T) {
		f := newAuthServiceFixture()
		sent := false
		f.otpSvc.SendRegistrationCodeFunc = func(ctx context.Context, email string) error {
			sent = true
			return nil
		}

		if err := f.svc.RequestRegistrationOTP(context.Background(), "new@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sent {
			t.Error("expected a registration code to be sent")
		}
	})

	t.Run("taken email is rejected before any code is sent", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		}
		f.otpSvc.SendRegistrationCodeFunc = func(ctx context.Context, email string) error {
			t.Error("no code should be sent for a taken email")
			return nil
		}

		if err := f.svc.RequestRegistrationOTP(context.Background(), "taken@example.com"); err != domain.ErrEmailTaken {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success consumes the code and persists the token", func(t *testing.T) {
		f := newAuthServiceFixture()

		var created *domain.User
		f.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = 7
			created = user
			return nil
		}
		otpDeleted := false
		f.otpRepo.DeleteByEmailFunc = func(ctx context.Context, email string) error {
			otpDeleted = true
			return nil
		}
		var storedToken string
		f.userRepo.UpdateSessionTokenFunc = func(ctx context.Context, id uint, token string) error {
			if id != 7 {
				t.Errorf("token stored for user %d, expected 7", id)
			}
			storedToken = token
			return nil
		}

		token, err := f.svc.Register(context.Background(), &domain.Registration{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Password:  "secret123",
			Code:      "123456",
		})
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}

		if created == nil {
			t.Fatal("no user was created")
		}
		if created.PasswordHash != "hashed:secret123" {
			t.Errorf("unexpected password hash %q", created.PasswordHash)
		}
		if created.ProfileImage != testDefaultProfileImage {
			t.Errorf("expected default profile image, got %q", created.ProfileImage)
		}
		if !otpDeleted {
			t.Error("expected the code to be consumed after user creation")
		}
		if token == "" || token != storedToken {
			t.Errorf("issued token %q was not the persisted token %q", token, storedToken)
		}
	})

	t.Run("otp failures pass through untouched", func(t *testing.T) {
		for _, want := range []error{domain.ErrOTPNotFound, domain.ErrOTPInvalid, domain.ErrOTPExpired} {
			f := newAuthServiceFixture()
			f.otpSvc.VerifyFunc = func(ctx context.Context, email, code string) error {
				return want
			}
			f.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
				t.Error("no user should be created when the code fails")
				return nil
			}

			_, err := f.svc.Register(context.Background(), &domain.Registration{
				FirstName: "Ada", LastName: "Lovelace",
				Email: "ada@example.com", Password: "secret123", Code: "000000",
			})
			if err != want {
				t.Errorf("expected %v, got %v", want, err)
			}
		}
	})

	t.Run("email registered after code issuance", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		}

		_, err := f.svc.Register(context.Background(), &domain.Registration{
			FirstName: "Ada", LastName: "Lovelace",
			Email: "ada@example.com", Password: "secret123", Code: "123456",
		})
		if err != domain.ErrEmailTaken {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	storedUser := &domain.User{ID: 3, Email: "user@example.com", PasswordHash: "hashed:secret123"}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*authServiceFixture)
		expectedError error
	}{
		{
			name:     "valid credentials",
			email:    "user@example.com",
			password: "secret123",
			setupMocks: func(f *authServiceFixture) {
				f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return storedUser, nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "unknown email",
			email:         "ghost@example.com",
			password:      "secret123",
			setupMocks:    func(f *authServiceFixture) {},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "user@example.com",
			password: "wrong",
			setupMocks: func(f *authServiceFixture) {
				f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return storedUser, nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthServiceFixture()
			var storedToken string
			f.userRepo.UpdateSessionTokenFunc = func(ctx context.Context, id uint, token string) error {
				storedToken = token
				return nil
			}
			tt.setupMocks(f)

			token, err := f.svc.Login(context.Background(), tt.email, tt.password)
			if err != tt.expectedError {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil {
				if token == "" || token != storedToken {
					t.Errorf("issued token %q was not the persisted token %q", token, storedToken)
				}
			} else if storedToken != "" {
				t.Error("no token should be persisted on a failed login")
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthServiceFixture()
	var cleared []string
	f.userRepo.UpdateSessionTokenFunc = func(ctx context.Context, id uint, token string) error {
		cleared = append(cleared, token)
		return nil
	}

	// Logging out twice in a row must both succeed.
	if err := f.svc.Logout(context.Background(), 3); err != nil {
		t.Fatalf("first logout returned error: %v", err)
	}
	if err := f.svc.Logout(context.Background(), 3); err != nil {
		t.Fatalf("second logout returned error: %v", err)
	}

	if len(cleared) != 2 || cleared[0] != "" || cleared[1] != "" {
		t.Errorf("expected two empty-token writes, got %v", cleared)
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	f := newAuthServiceFixture()
	var updatedHash string
	f.userRepo.UpdatePasswordByEmailFunc = func(ctx context.Context, email, passwordHash string) error {
		updatedHash = passwordHash
		return nil
	}
	tokenCleared := false
	f.userRepo.ClearSessionTokenByEmailFunc = func(ctx context.Context, email string) error {
		tokenCleared = true
		return nil
	}

	if err := f.svc.ResetPassword(context.Background(), "user@example.com", "newsecret"); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	if updatedHash != "hashed:newsecret" {
		t.Errorf("unexpected stored hash %q", updatedHash)
	}
	if !tokenCleared {
		t.Error("expected the session token to be cleared")
	}
}

func TestAuthService_ResetPassword_TokenClearFailureIsSwallowed(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.ClearSessionTokenByEmailFunc = func(ctx context.Context, email string) error {
		return errors.New("redis down")
	}

	if err := f.svc.ResetPassword(context.Background(), "user@example.com", "newsecret"); err != nil {
		t.Fatalf("expected token clear failure to be swallowed, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("rotates hash and session token", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Email: "user@example.com", PasswordHash: "hashed:old"}, nil
		}
		var updatedHash string
		f.userRepo.UpdatePasswordByIDFunc = func(ctx context.Context, id uint, passwordHash string) error {
			updatedHash = passwordHash
			return nil
		}
		var storedToken string
		f.userRepo.UpdateSessionTokenFunc = func(ctx context.Context, id uint, token string) error {
			storedToken = token
			return nil
		}

		token, err := f.svc.ChangePassword(context.Background(), 3, "user@example.com", "old", "new")
		if err != nil {
			t.Fatalf("ChangePassword returned error: %v", err)
		}
		if updatedHash != "hashed:new" {
			t.Errorf("unexpected stored hash %q", updatedHash)
		}
		if token == "" || token != storedToken {
			t.Errorf("issued token %q was not the persisted token %q", token, storedToken)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Email: "user@example.com", PasswordHash: "hashed:old"}, nil
		}

		if _, err := f.svc.ChangePassword(context.Background(), 3, "user@example.com", "nope", "new"); err != domain.ErrWrongPassword {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})
}

func TestAuthService_VerifyPassword(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, PasswordHash: "hashed:secret123"}, nil
	}

	if err := f.svc.VerifyPassword(context.Background(), 3, "secret123"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
	if err := f.svc.VerifyPassword(context.Background(), 3, "wrong"); err != domain.ErrWrongPassword {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}
