package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/http/middleware"
	"github.com/you/vaultsvc/internal/mocks"
	"github.com/you/vaultsvc/internal/services"
)

// stubIdentity plants an authenticated caller the way AuthMiddleware would.
func stubIdentity(userID uint, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextEmail, email)
		c.Next()
	}
}

func newItemRouter(itemRepo *mocks.MockItemRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewItemHandlers(services.NewItemService(itemRepo))
	r := gin.New()
	r.Use(stubIdentity(7, "user@example.com"))
	r.POST("/create", h.Create)
	r.GET("/read", h.Read)
	r.PUT("/update", h.Update)
	r.DELETE("/delete", h.Delete)
	return r
}

func jsonRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestItemHandlers_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		w := jsonRequest(newItemRouter(mocks.NewMockItemRepository()), http.MethodPost, "/create", gin.H{"name": "keys"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name and description are required.")
	})

	t.Run("success returns the new id", func(t *testing.T) {
		itemRepo := mocks.NewMockItemRepository()
		itemRepo.CreateFunc = func(ctx context.Context, item *domain.Item) error {
			require.Equal(t, uint(7), item.UserID)
			item.ID = 42
			return nil
		}

		w := jsonRequest(newItemRouter(itemRepo), http.MethodPost, "/create",
			gin.H{"name": "keys", "description": "spare house keys"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Item created successfully!")
		assert.Contains(t, w.Body.String(), `"itemId":42`)
	})
}

func TestItemHandlers_Read(t *testing.T) {
	itemRepo := mocks.NewMockItemRepository()
	itemRepo.ListByUserFunc = func(ctx context.Context, userID uint) ([]domain.Item, error) {
		return []domain.Item{{ID: 1, Name: "keys", Description: "spare house keys", UserID: userID}}, nil
	}

	w := jsonRequest(newItemRouter(itemRepo), http.MethodGet, "/read", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Items retrieved successfully!")
	assert.Contains(t, w.Body.String(), "spare house keys")
}

func TestItemHandlers_Update(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		w := jsonRequest(newItemRouter(mocks.NewMockItemRepository()), http.MethodPut, "/update",
			gin.H{"name": "keys", "description": "updated"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Item ID, name, and description are required.")
	})

	t.Run("not owned", func(t *testing.T) {
		itemRepo := mocks.NewMockItemRepository()
		itemRepo.UpdateFunc = func(ctx context.Context, item *domain.Item) (int64, error) {
			return 0, nil
		}

		w := jsonRequest(newItemRouter(itemRepo), http.MethodPut, "/update",
			gin.H{"id": 5, "name": "keys", "description": "updated"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Item not found or you do not have permission to update it.")
	})

	t.Run("success", func(t *testing.T) {
		w := jsonRequest(newItemRouter(mocks.NewMockItemRepository()), http.MethodPut, "/update",
			gin.H{"id": 5, "name": "keys", "description": "updated"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Item updated successfully!")
	})
}

func TestItemHandlers_Delete(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		w := jsonRequest(newItemRouter(mocks.NewMockItemRepository()), http.MethodDelete, "/delete", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Item ID is required.")
	})

	t.Run("not owned", func(t *testing.T) {
		itemRepo := mocks.NewMockItemRepository()
		itemRepo.DeleteFunc = func(ctx context.Context, id, userID uint) (int64, error) {
			return 0, nil
		}

		w := jsonRequest(newItemRouter(itemRepo), http.MethodDelete, "/delete", gin.H{"id": 5})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Item not found or you do not have permission to delete it.")
	})

	t.Run("success", func(t *testing.T) {
		w := jsonRequest(newItemRouter(mocks.NewMockItemRepository()), http.MethodDelete, "/delete", gin.H{"id": 5})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Item deleted successfully!")
	})
}
