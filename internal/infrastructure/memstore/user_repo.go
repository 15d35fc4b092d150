package memstore

import (
	"context"
	"strings"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// UserRepository is the in-memory implementation of contract.IUserRepository.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over the shared store.
func NewUserRepository(store *Store) contract.IUserRepository {
	return &UserRepository{store: store}
}

var _ contract.IUserRepository = (*UserRepository)(nil)

// CreateUser appends a new user. IDs minted at runtime are timestamp-based
// and are not expected to collide with the seed set.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.usersByID[user.ID]; ok {
		return contract.ErrDuplicateEntry
	}
	r.store.users = append(r.store.users, *user)
	r.store.usersByID[user.ID] = len(r.store.users) - 1
	return nil
}

// GetUserByID retrieves a user by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.usersByID[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	u := r.store.users[i]
	return &u, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if strings.EqualFold(r.store.users[i].Email, email) {
			u := r.store.users[i]
			return &u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

// GetUserByUsername retrieves a user by username, case-insensitively.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if strings.EqualFold(r.store.users[i].Username, username) {
			u := r.store.users[i]
			return &u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

// GetUserByWalletAddress retrieves a user by wallet address.
func (r *UserRepository) GetUserByWalletAddress(ctx context.Context, address string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if addr := r.store.users[i].WalletAddress; addr != nil && *addr == address {
			u := r.store.users[i]
			return &u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

// ListUsers returns a copy of every user in insertion order.
func (r *UserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]entity.User, len(r.store.users))
	copy(out, r.store.users)
	return out, nil
}

// UpdateUser replaces an existing user record.
func (r *UserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.usersByID[user.ID]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	r.store.users[i] = *user
	u := r.store.users[i]
	return &u, nil
}

// CountUsers returns the number of users.
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.users)), nil
}
