package usecase

import (
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID, sessionID string, role entity.UserRole) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
