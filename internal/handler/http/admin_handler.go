package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/handler/http/dto"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// AdminHandlerInterface defines the methods for the admin handler to
// allow interface-based dependency injection (for testing/mocking)
type AdminHandlerInterface interface {
	GetOverview(*gin.Context)
	GetUsers(*gin.Context)
	GetRewardRates(*gin.Context)
	UpdateRewardRates(*gin.Context)
}

var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	admin usecasecontract.IAdminUseCase
}

func NewAdminHandler(admin usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// GetOverview returns the admin dashboard key metrics
func (h *AdminHandler) GetOverview(c *gin.Context) {
	overview, err := h.admin.Overview(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load overview")
		return
	}
	SuccessHandler(c, http.StatusOK, overview)
}

// GetUsers lists every account on the platform
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.ToUserResponse(user))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// GetRewardRates returns the current engagement payout rates
func (h *AdminHandler) GetRewardRates(c *gin.Context) {
	rates, err := h.admin.RewardRates(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load reward rates")
		return
	}
	SuccessHandler(c, http.StatusOK, rates)
}

// UpdateRewardRates replaces the engagement payout rates
func (h *AdminHandler) UpdateRewardRates(c *gin.Context) {
	var req dto.RewardRatesRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	rates, err := parseRewardRates(req)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid rate amount")
		return
	}

	updated, err := h.admin.UpdateRewardRates(c.Request.Context(), rates)
	if err != nil {
		if errors.Is(err, usecase.ErrNegativeRewardRate) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to update reward rates")
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

func parseRewardRates(req dto.RewardRatesRequest) (usecasecontract.RewardRates, error) {
	var rates usecasecontract.RewardRates
	var err error
	if rates.Like, err = decimal.NewFromString(req.Like); err != nil {
		return rates, err
	}
	if rates.Comment, err = decimal.NewFromString(req.Comment); err != nil {
		return rates, err
	}
	if rates.Share, err = decimal.NewFromString(req.Share); err != nil {
		return rates, err
	}
	if rates.Upload, err = decimal.NewFromString(req.Upload); err != nil {
		return rates, err
	}
	return rates, nil
}
