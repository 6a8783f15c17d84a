package handlers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/http/middleware"
)

// UserHandlers handles profile HTTP requests
type UserHandlers struct {
	userSvc domain.UserService
	authSvc domain.AuthService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService, authSvc domain.AuthService) *UserHandlers {
	return &UserHandlers{
		userSvc: userSvc,
		authSvc: authSvc,
	}
}

// UpdateUserRequest represents a profile update request
type UpdateUserRequest struct {
	FirstName  string `json:"firstname"`
	MiddleName string `json:"middlename"`
	LastName   string `json:"lastname"`
	Email      string `json:"email"`
}

// VerifyPasswordRequest represents a current-password check request
type VerifyPasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// UserInfo handles fetching the caller's profile
func (h *UserHandlers) UserInfo(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	user, err := h.userSvc.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
			return
		}
		log.Printf("user-info: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred while fetching user information."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":             user.ID,
			"firstname":      user.FirstName,
			"middlename":     user.MiddleName,
			"lastname":       user.LastName,
			"email":          user.Email,
			"profilepicture": user.ProfileImage,
		},
	})
}

// UpdateUser handles updating the caller's own profile fields
func (h *UserHandlers) UpdateUser(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user ID."})
		return
	}
	if uint(userID) != identity.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized to update this user."})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FirstName == "" || req.LastName == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "First name, last name, and email are required."})
		return
	}

	if err := h.userSvc.UpdateProfile(c.Request.Context(), identity.ID, req.FirstName, req.MiddleName, req.LastName, req.Email); err != nil {
		log.Printf("update-user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating user information."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account information updated successfully!"})
}

// UploadProfilePicture handles swapping the caller's profile picture
func (h *UserHandlers) UploadProfilePicture(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	upload, err := readImageUpload(c, "profilePicture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded."})
		return
	}

	url, err := h.userSvc.UpdateProfileImage(c.Request.Context(), identity.ID, upload)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
			return
		}
		log.Printf("upload-profile-picture: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving profile picture."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile picture updated successfully!", "profilepicture": url})
}

// ProfilePicture handles fetching the caller's profile picture reference
func (h *UserHandlers) ProfilePicture(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	url, err := h.userSvc.GetProfileImage(c.Request.Context(), identity.ID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
			return
		}
		log.Printf("profile-picture: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred while fetching profile picture."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profilepicture": url})
}

// VerifyCurrentPassword handles checking the caller's current password
func (h *UserHandlers) VerifyCurrentPassword(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	var req VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Current password is required."})
		return
	}

	if err := h.authSvc.VerifyPassword(c.Request.Context(), identity.ID, req.CurrentPassword); err != nil {
		switch err {
		case domain.ErrWrongPassword:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Current password does not match."})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		default:
			log.Printf("verify-current-password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Current password matches."})
}

// ChangePassword handles rotating the caller's password and session token
func (h *UserHandlers) ChangePassword(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmNewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All password fields are required."})
		return
	}
	if req.NewPassword != req.ConfirmNewPassword {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "New password and confirm password do not match."})
		return
	}

	token, err := h.authSvc.ChangePassword(c.Request.Context(), identity.ID, identity.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch err {
		case domain.ErrWrongPassword:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid current password."})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		default:
			log.Printf("change-password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred while changing password."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully!", "token": token})
}

// readImageUpload pulls a multipart file field into memory.
func readImageUpload(c *gin.Context, field string) (*domain.ImageUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &domain.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
