package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/modules/users"
)

// RequireAdmin allows only authenticated users with the admin role.
// It assumes RequireAuth ran earlier in the chain but tolerates being
// mounted alone.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}
		if u.Role != users.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "admin access required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
