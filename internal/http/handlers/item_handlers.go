package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/http/middleware"
)

// ItemHandlers handles item CRUD HTTP requests
type ItemHandlers struct {
	itemSvc domain.ItemService
}

// NewItemHandlers creates new item handlers
func NewItemHandlers(itemSvc domain.ItemService) *ItemHandlers {
	return &ItemHandlers{itemSvc: itemSvc}
}

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DeleteItemRequest represents an item deletion request
type DeleteItemRequest struct {
	ID uint `json:"id"`
}

// Create handles item creation
func (h *ItemHandlers) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name and description are required."})
		return
	}

	id, err := h.itemSvc.Create(c.Request.Context(), identity.ID, req.Name, req.Description)
	if err != nil {
		log.Printf("create-item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating item."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item created successfully!", "itemId": id})
}

// Read handles fetching all items owned by the caller
func (h *ItemHandlers) Read(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	items, err := h.itemSvc.List(c.Request.Context(), identity.ID)
	if err != nil {
		log.Printf("read-items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error reading items."})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, i := range items {
		out = append(out, gin.H{
			"id":          i.ID,
			"name":        i.Name,
			"description": i.Description,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Items retrieved successfully!", "items": out})
}

// Update handles item updates
func (h *ItemHandlers) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 || req.Name == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Item ID, name, and description are required."})
		return
	}

	if err := h.itemSvc.Update(c.Request.Context(), identity.ID, req.ID, req.Name, req.Description); err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found or you do not have permission to update it."})
			return
		}
		log.Printf("update-item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating item."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item updated successfully!"})
}

// Delete handles item deletion
func (h *ItemHandlers) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	var req DeleteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Item ID is required."})
		return
	}

	if err := h.itemSvc.Delete(c.Request.Context(), identity.ID, req.ID); err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found or you do not have permission to delete it."})
			return
		}
		log.Printf("delete-item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting item."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item deleted successfully!"})
}
