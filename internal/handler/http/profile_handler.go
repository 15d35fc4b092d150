package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/handler/http/dto"
)

// ProfileHandler serves public profile reads straight from the
// repositories; there is no profile usecase because profiles carry no
// behavior of their own.
type ProfileHandler struct {
	userRepo    contract.IUserRepository
	videoRepo   contract.IVideoRepository
	commentRepo contract.ICommentRepository
}

func NewProfileHandler(userRepo contract.IUserRepository, videoRepo contract.IVideoRepository, commentRepo contract.ICommentRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
	}
}

// GetUser returns a user's public profile by ID
func (h *ProfileHandler) GetUser(c *gin.Context) {
	user, err := h.userRepo.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetUserVideos returns the videos a user has published
func (h *ProfileHandler) GetUserVideos(c *gin.Context) {
	if _, err := h.userRepo.GetUserByID(c.Request.Context(), c.Param("id")); err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}

	videos, err := h.videoRepo.ListVideosByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load videos")
		return
	}
	SuccessHandler(c, http.StatusOK, videos)
}

// GetVideoComments returns the comments on a video
func (h *ProfileHandler) GetVideoComments(c *gin.Context) {
	if _, err := h.videoRepo.GetVideoByID(c.Request.Context(), c.Param("videoID")); err != nil {
		ErrorHandler(c, http.StatusNotFound, "Video not found")
		return
	}

	comments, err := h.commentRepo.ListCommentsByVideo(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	SuccessHandler(c, http.StatusOK, comments)
}
