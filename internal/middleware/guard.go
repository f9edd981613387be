package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
)

// RequireCapability rejects callers whose role lacks capability. It must run after
// AuthMiddleware.
func RequireCapability(capability auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			httperr.Unauthorized(c, "unauthenticated", "Authentication required.")
			return
		}
		if !p.Can(capability) {
			httperr.Forbidden(c, "forbidden", "You are not allowed to do this.")
			return
		}
		c.Next()
	}
}
