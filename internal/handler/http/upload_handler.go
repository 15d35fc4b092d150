package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vibra-app/vibra/internal/handler/http/dto"
	"github.com/vibra-app/vibra/internal/infrastructure/metrics"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// UploadHandlerInterface defines the methods for the upload handler to
// allow interface-based dependency injection (for testing/mocking)
type UploadHandlerInterface interface {
	Upload(*gin.Context)
}

var _ UploadHandlerInterface = (*UploadHandler)(nil)

type UploadHandler struct {
	upload usecasecontract.IUploadUseCase
}

func NewUploadHandler(upload usecasecontract.IUploadUseCase) *UploadHandler {
	return &UploadHandler{upload: upload}
}

// Upload runs the simulated upload pipeline under the request context
func (h *UploadHandler) Upload(c *gin.Context) {
	var req dto.UploadRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	video, err := h.upload.Upload(c.Request.Context(), userID(c), usecasecontract.UploadRequest{
		Title:       req.Title,
		Description: req.Description,
		Tags:        splitTags(req.Tags),
		FileName:    req.FileName,
		FileSize:    req.FileSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingTitle),
			errors.Is(err, usecase.ErrMissingFile),
			errors.Is(err, usecase.ErrFileTooLarge),
			errors.Is(err, usecase.ErrUnsupportedFile):
			metrics.Uploads.WithLabelValues("rejected").Inc()
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			metrics.Uploads.WithLabelValues("cancelled").Inc()
			ErrorHandler(c, http.StatusRequestTimeout, "Upload cancelled")
		default:
			metrics.Uploads.WithLabelValues("failed").Inc()
			ErrorHandler(c, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	metrics.Uploads.WithLabelValues("completed").Inc()
	SuccessHandler(c, http.StatusCreated, video)
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
