package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByIDAndToken matches a user by id AND the exact session token on
	// record. It returns ErrUserNotFound when the token has been revoked.
	FindByIDAndToken(ctx context.Context, id uint, token string) (*User, error)
	UpdateProfile(ctx context.Context, id uint, firstName, middleName, lastName, email string) error
	UpdatePasswordByID(ctx context.Context, id uint, passwordHash string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	// UpdateSessionToken sets the single active token; an empty token clears it.
	UpdateSessionToken(ctx context.Context, id uint, token string) error
	ClearSessionTokenByEmail(ctx context.Context, email string) error
	UpdateProfileImage(ctx context.Context, id uint, image string) error
}

// OTPRepository defines one-time code storage. Upsert replaces any live
// record for the same email.
type OTPRepository interface {
	Upsert(ctx context.Context, record *OTPRecord) error
	FindByEmail(ctx context.Context, email string) (*OTPRecord, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// AccountRepository defines account data access operations. Update and
// Delete report the number of affected rows so callers can treat zero as
// not-found-or-not-owned.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	ListByUser(ctx context.Context, userID uint) ([]Account, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*Account, error)
	Update(ctx context.Context, account *Account) (int64, error)
	Delete(ctx context.Context, id, userID uint) (int64, error)
}

// ItemRepository defines item data access operations
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	ListByUser(ctx context.Context, userID uint) ([]Item, error)
	Update(ctx context.Context, item *Item) (int64, error)
	Delete(ctx context.Context, id, userID uint) (int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Issue(userID uint, email string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// Mailer defines outbound mail delivery
type Mailer interface {
	Send(to, subject, body string) error
}

// BlobStorage defines blob store operations. Upload returns the public URL
// of the stored object.
type BlobStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// OTPService defines one-time code issuance and verification
type OTPService interface {
	SendRegistrationCode(ctx context.Context, email string) error
	SendPasswordResetCode(ctx context.Context, email string) error
	// Verify consumes the code on success and deletes an expired record as
	// a side effect.
	Verify(ctx context.Context, email, code string) error
}

// AuthService defines the authentication lifecycle
type AuthService interface {
	RequestRegistrationOTP(ctx context.Context, email string) error
	RequestPasswordResetOTP(ctx context.Context, email string) error
	Register(ctx context.Context, reg *Registration) (string, error)
	VerifyPasswordResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, userID uint) error
	VerifyPassword(ctx context.Context, userID uint, password string) error
	ChangePassword(ctx context.Context, userID uint, email, currentPassword, newPassword string) (string, error)
}

// UserService defines profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, firstName, middleName, lastName, email string) error
	GetProfileImage(ctx context.Context, userID uint) (string, error)
	UpdateProfileImage(ctx context.Context, userID uint, upload *ImageUpload) (string, error)
}

// AccountService defines ownership-scoped account operations
type AccountService interface {
	Create(ctx context.Context, userID uint, site, username, password string, upload *ImageUpload) (uint, error)
	List(ctx context.Context, userID uint) ([]Account, error)
	Update(ctx context.Context, userID, id uint, site, username, password string, upload *ImageUpload, revertImage bool) error
	Delete(ctx context.Context, userID, id uint) error
}

// ItemService defines ownership-scoped item operations
type ItemService interface {
	Create(ctx context.Context, userID uint, name, description string) (uint, error)
	List(ctx context.Context, userID uint) ([]Item, error)
	Update(ctx context.Context, userID, id uint, name, description string) error
	Delete(ctx context.Context, userID, id uint) error
}
