package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// ModerationHandlerInterface defines the methods for the moderation
// handler to allow interface-based dependency injection (for
// testing/mocking)
type ModerationHandlerInterface interface {
	GetReports(*gin.Context)
	GetStats(*gin.Context)
	ResolveReport(*gin.Context)
	DismissReport(*gin.Context)
}

var _ ModerationHandlerInterface = (*ModerationHandler)(nil)

type ModerationHandler struct {
	moderation usecasecontract.IModerationUseCase
}

func NewModerationHandler(moderation usecasecontract.IModerationUseCase) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

// GetReports lists reports joined with content previews, optionally
// filtered by ?status=
func (h *ModerationHandler) GetReports(c *gin.Context) {
	status := entity.ReportStatus(c.Query("status"))
	reports, err := h.moderation.ListReports(c.Request.Context(), status)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, reports)
}

// GetStats summarizes the report queue
func (h *ModerationHandler) GetStats(c *gin.Context) {
	stats, err := h.moderation.Stats(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load moderation stats")
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}

// ResolveReport closes a pending report as resolved
func (h *ModerationHandler) ResolveReport(c *gin.Context) {
	report, err := h.moderation.Resolve(c.Request.Context(), c.Param("reportID"))
	if err != nil {
		h.closeError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, report)
}

// DismissReport closes a pending report as dismissed
func (h *ModerationHandler) DismissReport(c *gin.Context) {
	report, err := h.moderation.Dismiss(c.Request.Context(), c.Param("reportID"))
	if err != nil {
		h.closeError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, report)
}

func (h *ModerationHandler) closeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contract.ErrReportNotFound):
		ErrorHandler(c, http.StatusNotFound, "Report not found")
	case errors.Is(err, usecase.ErrReportNotPending):
		ErrorHandler(c, http.StatusConflict, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Failed to update report")
	}
}
