package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/tenant"
)

// Tenant moves the tenant header into the request context.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if t := c.GetHeader(tenant.Header); t != "" {
			c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), t))
		}
		c.Next()
	}
}
