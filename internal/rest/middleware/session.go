package middleware

import (
	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// SessionHeader carries the anonymous session identifier both ways.
	SessionHeader = "X-Session-ID"

	sessionContextKey = "session_id"
)

// Session resolves the caller's anonymous session identity. A known
// identifier passes through unchanged; a missing or unknown one gets a
// fresh identifier, echoed back in the response header so the client
// can persist it.
func Session(provider domain.SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := provider.Ensure(c.Request.Context(), c.GetHeader(SessionHeader))
		if err != nil {
			// Ensure never fails by contract, guard anyway
			logrus.Errorf("failed to ensure session identity: %v", err)
			c.Next()
			return
		}

		c.Set(sessionContextKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionID returns the session identifier resolved by Session, or an
// empty string when the middleware did not run.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
