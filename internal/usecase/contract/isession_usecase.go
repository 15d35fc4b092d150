package usecasecontract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// SessionResult is the outcome of a successful authentication operation.
type SessionResult struct {
	User        *entity.User
	SessionID   string
	AccessToken string
}

// ISessionUseCase tracks at most one authenticated user per session and
// exposes the four session operations plus session reads.
type ISessionUseCase interface {
	Login(ctx context.Context, email, password string) (*SessionResult, error)
	LoginWithWallet(ctx context.Context, address string) (*SessionResult, error)
	Register(ctx context.Context, email, password, username string) (*SessionResult, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, sessionID string, updates map[string]interface{}) (*entity.User, error)
}
