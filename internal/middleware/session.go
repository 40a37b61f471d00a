package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/danaholt/giftwish/internal/auth"
	appErrors "github.com/danaholt/giftwish/pkg/errors"
	"github.com/danaholt/giftwish/pkg/response"
)

// CtxSessionKey holds the resolved session in the gin context.
const CtxSessionKey = "giftwish.session"

// RequireSession resolves the session cookie and aborts with 401 when it is
// missing or expired. A stale cookie is cleared on the way out.
func RequireSession(registry *auth.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.SessionIDFromRequest(c)
		session, ok := registry.Resolve(id)
		if !ok {
			if id != "" {
				auth.ClearSessionCookie(c)
			}
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(CtxSessionKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session stored by RequireSession.
func SessionFromContext(c *gin.Context) (auth.Session, bool) {
	value, exists := c.Get(CtxSessionKey)
	if !exists {
		return auth.Session{}, false
	}
	session, ok := value.(auth.Session)
	return session, ok
}
