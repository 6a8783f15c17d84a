package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrWrongPassword      = errors.New("current password does not match")
)

// OTP errors
var (
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPInvalid  = errors.New("invalid otp code")
	ErrOTPExpired  = errors.New("otp has expired")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Resource errors
var (
	// ErrResourceNotFound covers both a missing row and a row owned by
	// someone else, so responses never leak existence.
	ErrResourceNotFound = errors.New("resource not found")
)

// Collaborator errors
var (
	ErrMailerFailure = errors.New("mailer failure")
)
