package sessionstore_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/infrastructure/sessionstore"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	user := &entity.User{
		ID:            "user-1",
		Username:      "cryptoqueen",
		Role:          entity.UserRoleCreator,
		WalletBalance: decimal.RequireFromString("2340.75"),
	}
	require.NoError(t, store.Save(ctx, "session-1", user))

	got, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "cryptoqueen", got.Username)
	assert.Equal(t, entity.UserRoleCreator, got.Role)
	assert.True(t, got.WalletBalance.Equal(user.WalletBalance))
}

func TestMemoryStore_GetReturnsIndependentSnapshot(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", &entity.User{ID: "user-1", Username: "original"}))

	first, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	first.Username = "mutated"

	second, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "original", second.Username)
}

func TestMemoryStore_SaveReplacesRecord(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", &entity.User{ID: "user-1", Username: "before"}))
	require.NoError(t, store.Save(ctx, "session-1", &entity.User{ID: "user-1", Username: "after"}))

	got, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Username)
}

func TestMemoryStore_MissingSession(t *testing.T) {
	store := sessionstore.NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", &entity.User{ID: "user-1"}))
	require.NoError(t, store.Delete(ctx, "session-1"))

	_, err := store.Get(ctx, "session-1")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)

	// deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, "session-1"))
}
