package middleware

import (
	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/auth"
	"poros-portal/cmd/api/services"
	"poros-portal/cmd/internal/logger"
)

// AdminAuthMiddleware validates the admin session (cookie or Bearer) and
// rejects requests whose user no longer exists or has been deactivated.
func AdminAuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractSessionToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Log.Debugf("session rejected: %v", err)
			auth.ClearSessionCookie(c)
			auth.AbortWithUnauthorized(c, services.ErrInvalidCredentials)
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)

		c.Next()
	}
}
