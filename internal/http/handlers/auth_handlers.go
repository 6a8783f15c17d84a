package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RequestOTPRequest represents an OTP request
type RequestOTPRequest struct {
	Email string `json:"email"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FirstName  string `json:"firstname"`
	MiddleName string `json:"middlename"`
	LastName   string `json:"lastname"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	OTP        string `json:"otp"`
}

// VerifyResetOTPRequest represents a password reset OTP verification request
type VerifyResetOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Email              string `json:"email"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RequestOTP handles registration OTP requests
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required."})
		return
	}

	if err := h.authSvc.RequestRegistrationOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case err == domain.ErrEmailTaken:
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already in use. Please try logging in."})
		case errors.Is(err, domain.ErrMailerFailure):
			log.Printf("request-otp: mailer failure for %s: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP. Mailer Error."})
		default:
			log.Printf("request-otp: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred while storing OTP."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("OTP sent successfully to %s", req.Email)})
}

// RequestPasswordResetOTP handles password reset OTP requests
func (h *AuthHandlers) RequestPasswordResetOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required."})
		return
	}

	if err := h.authSvc.RequestPasswordResetOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case err == domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Email not found."})
		case errors.Is(err, domain.ErrMailerFailure):
			log.Printf("forgot-password/request-otp: mailer failure for %s: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send password reset OTP. Mailer Error."})
		default:
			log.Printf("forgot-password/request-otp: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred while storing OTP."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Password reset OTP sent successfully to %s", req.Email)})
}

// Register handles OTP verification and user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields including OTP are required."})
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields including OTP are required."})
		return
	}

	token, err := h.authSvc.Register(c.Request.Context(), &domain.Registration{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Code:       req.OTP,
	})
	if err != nil {
		switch err {
		case domain.ErrOTPNotFound:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired OTP."})
		case domain.ErrOTPInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP. Please try again."})
		case domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP has expired. Please request a new one."})
		case domain.ErrEmailTaken:
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already in use."})
		default:
			log.Printf("verify-otp-and-register: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An unexpected error occurred."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registration successful!", "token": token})
}

// VerifyPasswordResetOTP handles password reset OTP verification
func (h *AuthHandlers) VerifyPasswordResetOTP(c *gin.Context) {
	var req VerifyResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and OTP are required."})
		return
	}

	if err := h.authSvc.VerifyPasswordResetOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		switch err {
		case domain.ErrOTPNotFound, domain.ErrOTPInvalid, domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired OTP."})
		default:
			log.Printf("forgot-password/verify-otp: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred during OTP verification."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified successfully. You can now reset your password."})
}

// ResetPassword handles setting a new password after OTP verification
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.NewPassword == "" || req.ConfirmNewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required."})
		return
	}
	if req.NewPassword != req.ConfirmNewPassword {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "New password and confirm password do not match."})
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		log.Printf("forgot-password/reset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred while resetting password."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset successfully! Please log in with your new password."})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required."})
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials!"})
			return
		}
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred during login."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful!", "token": token})
}

// Logout handles user logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), identity.ID); err != nil {
		log.Printf("logout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred during logout."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful!"})
}
