package contract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email, case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username, case-insensitively.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByWalletAddress retrieves a user by wallet address.
	GetUserByWalletAddress(ctx context.Context, address string) (*entity.User, error)
	// ListUsers returns every seeded user in insertion order.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// UpdateUser replaces an existing user and returns the updated record.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// CountUsers returns the number of users in the set.
	CountUsers(ctx context.Context) (int64, error)
}
