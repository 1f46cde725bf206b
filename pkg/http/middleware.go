package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "console_token"

	ctxKeyUsername = "username"
	ctxKeyRole     = "role"
)

// RequireSession accepts the session cookie set by Login, or a Bearer header,
// and puts the operator identity on the request context.
func (rs *RestfulServer) RequireSession(c *gin.Context) {
	tokenStr := ""

	if auth := c.GetHeader("Authorization"); auth != "" {
		if trimmed := strings.TrimPrefix(auth, "Bearer "); trimmed != auth {
			tokenStr = trimmed
		}
	}
	if tokenStr == "" {
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			tokenStr = cookie
		}
	}

	if tokenStr == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
		return
	}

	claims, err := rs.Console.Auth.VerifyToken(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
		return
	}

	c.Set(ctxKeyUsername, claims.Username)
	c.Set(ctxKeyRole, claims.Role)
	c.Next()
}

// clientKey identifies the caller for rate limiting: the operator when logged
// in, otherwise the remote address.
func clientKey(c *gin.Context) string {
	if username := c.GetString(ctxKeyUsername); username != "" {
		return username
	}
	return c.ClientIP()
}
