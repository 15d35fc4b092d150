package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// ErrNegativeRewardRate rejects reward configuration with negative rates.
var ErrNegativeRewardRate = errors.New("reward rates must not be negative")

// recentActivityLimit caps the overview's recent ledger slice.
const recentActivityLimit = 5

// AdminUsecase serves the admin dashboard: platform totals over the
// seeded dataset and the in-memory reward-rate configuration.
type AdminUsecase struct {
	userRepo  contract.IUserRepository
	videoRepo contract.IVideoRepository
	txRepo    contract.ITransactionRepository

	mu    sync.Mutex
	rates usecasecontract.RewardRates
}

// NewAdminUsecase creates a new AdminUsecase with the default reward
// rates.
func NewAdminUsecase(
	userRepo contract.IUserRepository,
	videoRepo contract.IVideoRepository,
	txRepo contract.ITransactionRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:  userRepo,
		videoRepo: videoRepo,
		txRepo:    txRepo,
		rates: usecasecontract.RewardRates{
			Like:    decimal.RequireFromString("0.1"),
			Comment: decimal.RequireFromString("0.2"),
			Share:   decimal.RequireFromString("0.5"),
			Upload:  decimal.RequireFromString("1.0"),
		},
	}
}

var _ usecasecontract.IAdminUseCase = (*AdminUsecase)(nil)

// Overview builds the key-metrics block and the recent activity list.
func (uc *AdminUsecase) Overview(ctx context.Context) (*usecasecontract.AdminOverview, error) {
	totalUsers, err := uc.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	totalVideos, err := uc.videoRepo.CountVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	videos, err := uc.videoRepo.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	var totalViews int64
	for _, v := range videos {
		totalViews += v.Views
	}

	txs, err := uc.txRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	rewardsPaid := decimal.Zero
	withdrawalsTotal := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case entity.TransactionTypeReward:
			rewardsPaid = rewardsPaid.Add(tx.Amount)
		case entity.TransactionTypeWithdrawal:
			withdrawalsTotal = withdrawalsTotal.Add(tx.Amount.Abs())
		}
	}

	recent := make([]usecasecontract.ActivityEntry, 0, recentActivityLimit)
	for _, tx := range txs {
		if len(recent) == recentActivityLimit {
			break
		}
		entry := usecasecontract.ActivityEntry{Transaction: tx}
		if user, err := uc.userRepo.GetUserByID(ctx, tx.UserID); err == nil {
			entry.Username = user.Username
		}
		recent = append(recent, entry)
	}

	return &usecasecontract.AdminOverview{
		TotalUsers:       totalUsers,
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		RewardsPaid:      rewardsPaid,
		WithdrawalsTotal: withdrawalsTotal,
		PlatformBalance:  rewardsPaid.Sub(withdrawalsTotal),
		RecentActivity:   recent,
	}, nil
}

// ListUsers returns every user for the management table.
func (uc *AdminUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return uc.userRepo.ListUsers(ctx)
}

// RewardRates returns the active reward configuration.
func (uc *AdminUsecase) RewardRates(ctx context.Context) (usecasecontract.RewardRates, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.rates, nil
}

// UpdateRewardRates replaces the reward configuration. Rates are
// in-memory only and reset on restart.
func (uc *AdminUsecase) UpdateRewardRates(ctx context.Context, rates usecasecontract.RewardRates) (usecasecontract.RewardRates, error) {
	for _, r := range []decimal.Decimal{rates.Like, rates.Comment, rates.Share, rates.Upload} {
		if r.IsNegative() {
			return usecasecontract.RewardRates{}, ErrNegativeRewardRate
		}
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rates = rates
	return uc.rates, nil
}
