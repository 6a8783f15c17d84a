package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/http/middleware"
)

// AccountHandlers handles account CRUD HTTP requests. Create and update
// accept multipart form data because an image may ride along.
type AccountHandlers struct {
	accountSvc          domain.AccountService
	defaultAccountImage string
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService, defaultAccountImage string) *AccountHandlers {
	return &AccountHandlers{
		accountSvc:          accountSvc,
		defaultAccountImage: defaultAccountImage,
	}
}

// Create handles account creation
func (h *AccountHandlers) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	site := c.PostForm("site")
	username := c.PostForm("username")
	password := c.PostForm("password")
	if site == "" || username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Site, username, and password are required."})
		return
	}

	upload, _ := readImageUpload(c, "image")

	id, err := h.accountSvc.Create(c.Request.Context(), identity.ID, site, username, password, upload)
	if err != nil {
		log.Printf("create-account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating account."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account created successfully!", "accountId": id})
}

// List handles fetching all accounts owned by the caller
func (h *AccountHandlers) List(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	accounts, err := h.accountSvc.List(c.Request.Context(), identity.ID)
	if err != nil {
		log.Printf("list-accounts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error reading accounts."})
		return
	}

	out := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, gin.H{
			"id":       a.ID,
			"site":     a.Site,
			"username": a.Username,
			"password": a.Password,
			"image":    a.Image,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Accounts retrieved successfully!", "accounts": out})
}

// Update handles account updates
func (h *AccountHandlers) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	accountID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid account ID."})
		return
	}

	site := c.PostForm("site")
	username := c.PostForm("username")
	password := c.PostForm("password")
	if site == "" || username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Site, username, and password are required."})
		return
	}

	upload, _ := readImageUpload(c, "image")

	// Without an upload, an explicit default-image value in the form means
	// the caller wants the custom image gone.
	revert := false
	if upload == nil {
		imageField := c.PostForm("image")
		revert = imageField == "images/default.png" || imageField == h.defaultAccountImage
	}

	err = h.accountSvc.Update(c.Request.Context(), identity.ID, uint(accountID), site, username, password, upload, revert)
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Account not found or you do not have permission to update it."})
			return
		}
		log.Printf("update-account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating account."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account updated successfully!"})
}

// Delete handles account deletion
func (h *AccountHandlers) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	accountID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid account ID."})
		return
	}

	if err := h.accountSvc.Delete(c.Request.Context(), identity.ID, uint(accountID)); err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Account not found or you do not have permission to delete it."})
			return
		}
		log.Printf("delete-account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting account."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted successfully!"})
}
