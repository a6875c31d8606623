package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie carries the admin session token.
	SessionCookie = "admin_session"
	// ViewCookie carries the view-dedup token for public article reads.
	ViewCookie = "poros_viewed"
)

var (
	ErrMissingToken  = errors.New("missing_session_token")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// ExtractSessionToken returns the admin session token from the session
// cookie, falling back to a Bearer Authorization header for non-browser
// clients.
func ExtractSessionToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// SetSessionCookie attaches an httpOnly session cookie to the response.
func SetSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// SetViewCookie attaches the view-dedup cookie; its lifetime matches the
// dedup window so cookie and token expire together.
func SetViewCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ViewCookie, token, int(ViewDedupWindow.Seconds()), "/", "", false, true)
}

// ViewCookieValue returns the current view-dedup token, empty when absent.
func ViewCookieValue(c *gin.Context) string {
	cookie, err := c.Cookie(ViewCookie)
	if err != nil {
		return ""
	}
	return cookie
}

// AbortWithUnauthorized aborts the request with 401 status and error JSON.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
