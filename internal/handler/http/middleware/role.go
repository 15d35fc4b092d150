package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibra-app/vibra/internal/authz"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/handler/http/dto"
)

// RequireRole gates a route on the caller's role. It must run after
// AuthMiddleWare, which puts the role on the context.
func RequireRole(req authz.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
			return
		}
		role, ok := value.(entity.UserRole)
		if !ok || !authz.CanAccess(role, req) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Access denied"})
			return
		}
		c.Next()
	}
}
