package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibra-app/vibra/internal/infrastructure/memstore"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

func newAdminUsecase(t *testing.T) *usecase.AdminUsecase {
	t.Helper()
	store := memstore.NewStore(memstore.Seed())
	return usecase.NewAdminUsecase(
		memstore.NewUserRepository(store),
		memstore.NewVideoRepository(store),
		memstore.NewTransactionRepository(store),
	)
}

func TestAdminOverview(t *testing.T) {
	uc := newAdminUsecase(t)

	overview, err := uc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), overview.TotalUsers)
	assert.Equal(t, int64(5), overview.TotalVideos)
	assert.Equal(t, int64(549600), overview.TotalViews)

	// rewards: 234.50 + 178.90 + 45.75; withdrawals: 500 + 200
	assert.True(t, overview.RewardsPaid.Equal(decimal.RequireFromString("459.15")))
	assert.True(t, overview.WithdrawalsTotal.Equal(decimal.RequireFromString("700")))
	assert.True(t, overview.PlatformBalance.Equal(decimal.RequireFromString("-240.85")))
}

func TestAdminOverview_RecentActivity(t *testing.T) {
	uc := newAdminUsecase(t)

	overview, err := uc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.RecentActivity, 5)
	assert.Equal(t, "tx-5", overview.RecentActivity[0].Transaction.ID)
	assert.Equal(t, "cryptoqueen", overview.RecentActivity[0].Username)
	assert.Equal(t, "tx-4", overview.RecentActivity[4].Transaction.ID)
}

func TestAdminListUsers(t *testing.T) {
	uc := newAdminUsecase(t)

	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestRewardRates_Defaults(t *testing.T) {
	uc := newAdminUsecase(t)

	rates, err := uc.RewardRates(context.Background())
	require.NoError(t, err)
	assert.True(t, rates.Like.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, rates.Comment.Equal(decimal.RequireFromString("0.2")))
	assert.True(t, rates.Share.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, rates.Upload.Equal(decimal.RequireFromString("1.0")))
}

func TestUpdateRewardRates(t *testing.T) {
	uc := newAdminUsecase(t)
	ctx := context.Background()

	next := usecasecontract.RewardRates{
		Like:    decimal.RequireFromString("0.25"),
		Comment: decimal.RequireFromString("0.5"),
		Share:   decimal.RequireFromString("1"),
		Upload:  decimal.RequireFromString("2"),
	}
	updated, err := uc.UpdateRewardRates(ctx, next)
	require.NoError(t, err)
	assert.True(t, updated.Like.Equal(next.Like))

	current, err := uc.RewardRates(ctx)
	require.NoError(t, err)
	assert.True(t, current.Upload.Equal(next.Upload))
}

func TestUpdateRewardRates_RejectsNegative(t *testing.T) {
	uc := newAdminUsecase(t)

	_, err := uc.UpdateRewardRates(context.Background(), usecasecontract.RewardRates{
		Like:    decimal.RequireFromString("-0.1"),
		Comment: decimal.RequireFromString("0.2"),
		Share:   decimal.RequireFromString("0.5"),
		Upload:  decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, usecase.ErrNegativeRewardRate)

	// the active rates are untouched
	rates, err := uc.RewardRates(context.Background())
	require.NoError(t, err)
	assert.True(t, rates.Like.Equal(decimal.RequireFromString("0.1")))
}
