package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie writes the http-only session cookie. MaxAge mirrors the
// registry TTL so the browser drops the cookie around the time the server
// side record expires.
func SetSessionCookie(c *gin.Context, session Session, ttlSeconds int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   ttlSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie instructs the browser to discard the session cookie.
func ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionIDFromRequest extracts the cookie value, empty when absent.
func SessionIDFromRequest(c *gin.Context) string {
	cookie, err := c.Request.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
