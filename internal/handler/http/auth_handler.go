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

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Login(*gin.Context)
	WalletLogin(*gin.Context)
	Register(*gin.Context)
	Logout(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateProfile(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	sessions usecasecontract.ISessionUseCase
}

func NewAuthHandler(sessions usecasecontract.ISessionUseCase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles email/password authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginFailures.Inc()
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	metrics.Logins.WithLabelValues("email").Inc()
	SuccessHandler(c, http.StatusOK, dto.SessionResponse{
		User:        dto.ToUserResponse(*result.User),
		AccessToken: result.AccessToken,
	})
}

// WalletLogin authenticates by wallet address, synthesizing an account
// for addresses not seen before
func (h *AuthHandler) WalletLogin(c *gin.Context) {
	var req dto.WalletLoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.sessions.LoginWithWallet(c.Request.Context(), req.Address)
	if err != nil {
		metrics.LoginFailures.Inc()
		ErrorHandler(c, http.StatusBadRequest, "Invalid wallet address")
		return
	}

	metrics.Logins.WithLabelValues("wallet").Inc()
	SuccessHandler(c, http.StatusOK, dto.SessionResponse{
		User:        dto.ToUserResponse(*result.User),
		AccessToken: result.AccessToken,
	})
}

// Register handles account creation (signup)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.sessions.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) || errors.Is(err, usecase.ErrUsernameTaken) {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	metrics.Registrations.Inc()
	SuccessHandler(c, http.StatusCreated, dto.SessionResponse{
		User:        dto.ToUserResponse(*result.User),
		AccessToken: result.AccessToken,
	})
}

// Logout ends the caller's session and tears down its feed state
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.sessions.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

// GetCurrentUser returns the session's user snapshot
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.sessions.CurrentUser(c.Request.Context(), sessionID.(string))
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Session is no longer active")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile updates the editable profile fields of the current user
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := updateProfileRequestToMap(req)
	user, err := h.sessions.UpdateProfile(c.Request.Context(), sessionID.(string), updates)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func updateProfileRequestToMap(req dto.UpdateProfileRequest) map[string]interface{} {
	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	return updates
}
