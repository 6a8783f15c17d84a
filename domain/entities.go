package domain

import "time"

// User represents a registered user. SessionToken holds the single active
// session token for the user; it is empty when the user is logged out.
type User struct {
	ID           uint
	Email        string
	PasswordHash string
	FirstName    string
	MiddleName   string
	LastName     string
	ProfileImage string
	SessionToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OTPRecord is the live one-time code for an email address. At most one
// record exists per email; issuing a new code replaces the old one.
type OTPRecord struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Account is a user-owned credential entry for an external site.
type Account struct {
	ID       uint
	Site     string
	Username string
	Password string
	Image    string
	UserID   uint
}

// Item is a user-owned free-form entry.
type Item struct {
	ID          uint
	Name        string
	Description string
	UserID      uint
}

// Registration carries the fields required to create a user.
type Registration struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Password   string
	Code       string
}

// TokenClaims represents session token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Identity is the authenticated caller exposed by the auth middleware.
type Identity struct {
	ID    uint
	Email string
}

// ImageUpload is an inbound multipart image file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
