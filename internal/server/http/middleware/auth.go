package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const authCookieName = "foodorder_staff"

// StaffAuthorizer validates staff session tokens.
type StaffAuthorizer interface {
	AuthorizeStaff(token string) error
}

// StaffRequired ensures the caller holds a valid staff session before accessing handler.
func StaffRequired(authorizer StaffAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authorizer.AuthorizeStaff(extractToken(c)); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes staff session cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the staff session cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
