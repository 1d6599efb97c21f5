// admin_only.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/httpx"
)

// AdminOnly re-asserts the resolved principal carries the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok || !p.IsAdmin {
			httpx.Error(c, http.StatusForbidden, "admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}
