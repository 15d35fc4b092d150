package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibra-app/vibra/internal/handler/http/dto"
	"github.com/vibra-app/vibra/internal/infrastructure/metrics"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// FeedHandlerInterface defines the methods for the feed handler to allow
// interface-based dependency injection (for testing/mocking)
type FeedHandlerInterface interface {
	GetFeed(*gin.Context)
	Scroll(*gin.Context)
	Navigate(*gin.Context)
	GetState(*gin.Context)
	GetActiveVideo(*gin.Context)
	ToggleLike(*gin.Context)
	Share(*gin.Context)
}

var _ FeedHandlerInterface = (*FeedHandler)(nil)

type FeedHandler struct {
	feed usecasecontract.IFeedUseCase
}

func NewFeedHandler(feed usecasecontract.IFeedUseCase) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// GetFeed returns the session's video feed in order
func (h *FeedHandler) GetFeed(c *gin.Context) {
	videos, err := h.feed.Feed(c.Request.Context(), sessionID(c))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load feed")
		return
	}
	SuccessHandler(c, http.StatusOK, videos)
}

// Scroll reports a scroll position and returns the resulting feed state
func (h *FeedHandler) Scroll(c *gin.Context) {
	var req dto.ScrollRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	state, err := h.feed.Scroll(c.Request.Context(), sessionID(c), req.ScrollTop, req.ViewportHeight)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to handle scroll")
		return
	}

	metrics.FeedScrollEvents.Inc()
	SuccessHandler(c, http.StatusOK, state)
}

// Navigate steps the feed one video up or down
func (h *FeedHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.feed.Navigate(c.Request.Context(), sessionID(c), req.Direction)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownDirection) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to navigate")
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// GetState returns the active index and scrolling flag
func (h *FeedHandler) GetState(c *gin.Context) {
	state, err := h.feed.State(c.Request.Context(), sessionID(c))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to read feed state")
		return
	}
	SuccessHandler(c, http.StatusOK, state)
}

// GetActiveVideo returns the video that should be playing, or 204 while
// a scroll is still settling
func (h *FeedHandler) GetActiveVideo(c *gin.Context) {
	video, err := h.feed.ActiveVideo(c.Request.Context(), sessionID(c))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to read active video")
		return
	}
	if video == nil {
		c.Status(http.StatusNoContent)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

// ToggleLike flips the caller's like on a video in the feed
func (h *FeedHandler) ToggleLike(c *gin.Context) {
	videoID := c.Param("videoID")
	video, err := h.feed.ToggleLike(c.Request.Context(), sessionID(c), videoID)
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotInFeed) {
			ErrorHandler(c, http.StatusNotFound, "Video not found in feed")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	metrics.Likes.Inc()
	SuccessHandler(c, http.StatusOK, video)
}

// Share records a share on a video in the feed
func (h *FeedHandler) Share(c *gin.Context) {
	videoID := c.Param("videoID")
	video, err := h.feed.Share(c.Request.Context(), sessionID(c), videoID)
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotInFeed) {
			ErrorHandler(c, http.StatusNotFound, "Video not found in feed")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to share video")
		return
	}

	metrics.Shares.Inc()
	SuccessHandler(c, http.StatusOK, video)
}

// sessionID reads the session identifier placed on the context by the
// auth middleware. Routes using it are always behind that middleware.
func sessionID(c *gin.Context) string {
	value, _ := c.Get("sessionID")
	id, _ := value.(string)
	return id
}
