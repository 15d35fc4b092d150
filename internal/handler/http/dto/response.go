package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Avatar        string          `json:"avatar"`
	Role          string          `json:"role"`
	Verified      bool            `json:"verified"`
	Followers     int64           `json:"followers"`
	Following     int64           `json:"following"`
	TotalEarned   decimal.Decimal `json:"total_earned"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	WalletAddress *string         `json:"wallet_address,omitempty"`
	CreatedAt     string          `json:"created_at"`
	Bio           *string         `json:"bio,omitempty"`
}

// SessionResponse is the DTO for a successful login, register or wallet
// login.
type SessionResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Avatar:        user.Avatar,
		Role:          string(user.Role),
		Verified:      user.Verified,
		Followers:     user.Followers,
		Following:     user.Following,
		TotalEarned:   user.TotalEarned,
		WalletBalance: user.WalletBalance,
		WalletAddress: user.WalletAddress,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
		Bio:           user.Bio,
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
