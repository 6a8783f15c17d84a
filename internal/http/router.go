package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/internal/http/handlers"
	"github.com/you/vaultsvc/internal/http/middleware"
)

// BuildRouter wires all routes. Everything past the auth endpoints sits
// behind the JWT middleware.
func BuildRouter(
	authH *handlers.AuthHandlers,
	userH *handlers.UserHandlers,
	accountH *handlers.AccountHandlers,
	itemH *handlers.ItemHandlers,
	jwtmw *middleware.AuthMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/request-otp", authH.RequestOTP)
	r.POST("/verify-otp-and-register", authH.Register)
	r.POST("/login", authH.Login)
	r.POST("/forgot-password/request-otp", authH.RequestPasswordResetOTP)
	r.POST("/forgot-password/verify-otp", authH.VerifyPasswordResetOTP)
	r.POST("/forgot-password/reset", authH.ResetPassword)

	auth := r.Group("/")
	auth.Use(jwtmw.WithJWT())
	{
		auth.POST("/logout", authH.Logout)

		auth.GET("/user-info", userH.UserInfo)
		auth.PUT("/users/:id", userH.UpdateUser)
		auth.POST("/upload-profile-picture", userH.UploadProfilePicture)
		auth.GET("/profile-picture", userH.ProfilePicture)
		auth.POST("/verify-current-password", userH.VerifyCurrentPassword)
		auth.POST("/change-password", userH.ChangePassword)

		auth.POST("/accounts", accountH.Create)
		auth.GET("/accounts", accountH.List)
		auth.PUT("/accounts/:id", accountH.Update)
		auth.DELETE("/accounts/:id", accountH.Delete)

		auth.POST("/create", itemH.Create)
		auth.GET("/read", itemH.Read)
		auth.PUT("/update", itemH.Update)
		auth.DELETE("/delete", itemH.Delete)
	}

	return r
}
