package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the cart session for the request. Clients send
// the id back on every call; when it is missing a fresh UUID is minted and
// echoed in the response header so the client can adopt it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("session_id", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
