package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fieldserve/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextCallerID = "callerID"
	ContextRole     = "role"
)

// JWTAuthMiddleware validates the bearer token and injects the caller
// identity into the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextCallerID, id)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireRole rejects callers whose token role differs from the one the
// route group serves.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this resource"})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller id set by JWTAuthMiddleware.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextCallerID)
}
