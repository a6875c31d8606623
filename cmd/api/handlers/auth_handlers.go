package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/auth"
	"poros-portal/cmd/api/dto"
	"poros-portal/cmd/api/services"
)

// LoginHandler godoc
// @Summary      Log in
// @Description  Verifies admin credentials and sets the session cookie
// @Tags         auth
// @Param        request  body  dto.LoginRequest  true  "Credentials"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.LoginResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(svc *services.AuthService, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("malformed request body: %w", services.ErrInvalidInput))
			return
		}

		token, user, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		auth.SetSessionCookie(c, token, int(sessionTTL.Seconds()))
		c.JSON(http.StatusOK, dto.LoginResponseDTO{Success: true, User: *user})
	}
}

// LogoutHandler godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponseDTO
// @Router       /auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookie(c)
		c.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true})
	}
}

// MeHandler godoc
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionUserDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /auth/me [get]
func MeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractSessionToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		user, err := svc.DecodeSession(token)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
