package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"employee-dashboard/internal/shared/response"
)

const bearerPrefix = "Bearer "

// Auth gates every employee route behind one process-wide secret. The
// token is injected at registration time; the gate never re-reads
// configuration per request. Checks short-circuit in order: missing
// header, malformed header, wrong token.
func Auth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Missing Authorization header", "")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.Error(c, http.StatusUnauthorized, "Invalid Authorization format. Expected: Bearer <token>", "")
			c.Abort()
			return
		}

		presented := authHeader[len(bearerPrefix):]
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			response.Error(c, http.StatusUnauthorized, "Invalid token", "")
			c.Abort()
			return
		}

		c.Next()
	}
}
