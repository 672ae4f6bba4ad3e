package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/auth"
)

const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// Auth validates the Bearer token and stores the caller's identity on the
// request context. Paths under /auth are mounted without this middleware.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := auth.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated caller's id, or "" if unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

// Role returns the authenticated caller's role, or "" if unauthenticated.
func Role(c *gin.Context) string {
	return c.GetString(CtxRole)
}
