package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// DiscoverHandlerInterface defines the methods for the discover handler
// to allow interface-based dependency injection (for testing/mocking)
type DiscoverHandlerInterface interface {
	Search(*gin.Context)
	GetTrendingTags(*gin.Context)
}

var _ DiscoverHandlerInterface = (*DiscoverHandler)(nil)

type DiscoverHandler struct {
	discover usecasecontract.IDiscoverUseCase
}

func NewDiscoverHandler(discover usecasecontract.IDiscoverUseCase) *DiscoverHandler {
	return &DiscoverHandler{discover: discover}
}

// Search filters videos by query and orders them by category
func (h *DiscoverHandler) Search(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", "trending")

	videos, err := h.discover.Search(c.Request.Context(), query, category)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, videos)
}

// GetTrendingTags returns tag usage counts, most used first
func (h *DiscoverHandler) GetTrendingTags(c *gin.Context) {
	tags, err := h.discover.TrendingTags(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load trending tags")
		return
	}
	SuccessHandler(c, http.StatusOK, tags)
}
