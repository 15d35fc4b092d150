package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered user in the system
type User struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Avatar        string          `json:"avatar"`
	Role          UserRole        `json:"role"`
	Verified      bool            `json:"verified"`
	Followers     int64           `json:"followers"`
	Following     int64           `json:"following"`
	TotalEarned   decimal.Decimal `json:"total_earned"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	WalletAddress *string         `json:"wallet_address,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Bio           *string         `json:"bio,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleCreator   UserRole = "creator"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleCreator, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}
