package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/domain"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthMiddleware creates authentication middleware. A token is accepted only
// if its signature verifies AND it is still the token on record for the
// user, so a login elsewhere, a logout, or a password change revokes it.
func AuthMiddleware(tokenSvc domain.TokenService, userRepo domain.UserRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// Value must be exactly "Bearer <token>".
		var token string
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access token required."})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(token)
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Token has expired. Please log in again."})
			default:
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid token. Please log in again."})
			}
			c.Abort()
			return
		}

		// Revocation check: the row must still carry this exact token.
		user, err := userRepo.FindByIDAndToken(c.Request.Context(), claims.UserID, token)
		if err != nil {
			if err == domain.ErrUserNotFound {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid token. Please log in again."})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred during token validation."})
			}
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)

		c.Next()
	})
}

// IdentityFromContext returns the authenticated caller set by AuthMiddleware.
func IdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return domain.Identity{}, false
	}
	email, ok := c.Get(ContextEmail)
	if !ok {
		return domain.Identity{}, false
	}
	return domain.Identity{ID: id.(uint), Email: email.(string)}, true
}
