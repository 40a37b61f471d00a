package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestIDKey holds the request identifier in the gin context.
const CtxRequestIDKey = "giftwish.request_id"

// RequestIDHeader is echoed back to clients for correlation.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request a UUID, honouring one supplied by a
// trusted proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(CtxRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
