package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibra-app/vibra/internal/authz"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// NavHandler serves the role-filtered navigation menu.
type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// GetNavigation returns the menu entries visible to the caller's role
func (h *NavHandler) GetNavigation(c *gin.Context) {
	value, exists := c.Get("role")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	role, ok := value.(entity.UserRole)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	SuccessHandler(c, http.StatusOK, authz.NavItemsFor(role))
}
