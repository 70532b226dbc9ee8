package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/utils"
)

// Context keys populated by RequireAuth.
const (
	CtxUserName = "userName"
	CtxRole     = "role"
)

// RequireAuth validates the bearer token and exposes the caller's identity
// and role to downstream handlers. Missing, malformed, expired or
// tampered tokens all fail with 401.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(CtxUserName, claims.Subject)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// RequireRole gates a route on the role RequireAuth stored in the context.
// A valid token with the wrong role is 403, not 401.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(CtxRole)
		if !ok || got.(models.Role) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// Identity returns the authenticated userName and role set by RequireAuth.
func Identity(c *gin.Context) (string, models.Role) {
	userName, _ := c.Get(CtxUserName)
	role, _ := c.Get(CtxRole)
	name, _ := userName.(string)
	r, _ := role.(models.Role)
	return name, r
}
