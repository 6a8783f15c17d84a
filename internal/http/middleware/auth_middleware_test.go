package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/mocks"
)

func newProtectedRouter(tokenSvc domain.TokenService, userRepo domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, userRepo), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": identity.ID, "email": identity.Email})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "bearer without token", header: "Bearer"},
		{name: "too many parts", header: "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newProtectedRouter(mocks.NewMockTokenService(), mocks.NewMockUserRepository())
			w := doRequest(r, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Access token required.")
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenExpired
	}

	r := newProtectedRouter(tokenSvc, mocks.NewMockUserRepository())
	w := doRequest(r, "Bearer expired-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired. Please log in again.")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenInvalid
	}

	r := newProtectedRouter(tokenSvc, mocks.NewMockUserRepository())
	w := doRequest(r, "Bearer bad-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token. Please log in again.")
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	// Signature valid, but the row no longer carries this token.
	tokenSvc := mocks.NewMockTokenService()
	userRepo := mocks.NewMockUserRepository()
	// Default FindByIDAndToken answers ErrUserNotFound

	r := newProtectedRouter(tokenSvc, userRepo)
	w := doRequest(r, "Bearer revoked-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token. Please log in again.")
}

func TestAuthMiddleware_RepositoryFailure(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDAndTokenFunc = func(ctx context.Context, id uint, token string) (*domain.User, error) {
		return nil, errors.New("connection reset")
	}

	r := newProtectedRouter(mocks.NewMockTokenService(), userRepo)
	w := doRequest(r, "Bearer some-token")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred during token validation.")
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDAndTokenFunc = func(ctx context.Context, id uint, token string) (*domain.User, error) {
		return &domain.User{ID: id, Email: "user@example.com"}, nil
	}

	r := newProtectedRouter(tokenSvc, userRepo)
	w := doRequest(r, "Bearer valid-token")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"user@example.com"`)
}
