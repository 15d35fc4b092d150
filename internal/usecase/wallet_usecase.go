package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/infrastructure/simulate"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// ErrAmountBelowMinimum rejects withdrawals under the platform minimum.
var ErrAmountBelowMinimum = errors.New("amount below minimum withdrawal")

// pendingRewards is the fixed figure the dashboard shows; no reward
// accrual pipeline exists behind it.
var pendingRewards = decimal.RequireFromString("45.75")

// WalletUsecase serves the wallet screen. The ledger behind it is
// read-only: withdrawals are simulated to completion and never recorded.
type WalletUsecase struct {
	userRepo contract.IUserRepository
	txRepo   contract.ITransactionRepository
	logger   usecasecontract.IAppLogger
	config   usecasecontract.IConfigProvider
}

// NewWalletUsecase creates a new WalletUsecase instance.
func NewWalletUsecase(
	userRepo contract.IUserRepository,
	txRepo contract.ITransactionRepository,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *WalletUsecase {
	return &WalletUsecase{
		userRepo: userRepo,
		txRepo:   txRepo,
		logger:   logger,
		config:   cfg,
	}
}

var _ usecasecontract.IWalletUseCase = (*WalletUsecase)(nil)

// Summary builds the dashboard header for a user.
func (uc *WalletUsecase) Summary(ctx context.Context, userID string) (*usecasecontract.WalletSummary, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet summary: %w", err)
	}
	return &usecasecontract.WalletSummary{
		AvailableBalance: user.WalletBalance,
		PendingRewards:   pendingRewards,
		TotalEarned:      user.TotalEarned,
		USDEstimate:      user.WalletBalance.Mul(uc.config.GetUSDRate()),
		WalletAddress:    user.WalletAddress,
	}, nil
}

// Transactions returns the user's ledger entries, newest first.
func (uc *WalletUsecase) Transactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return uc.txRepo.ListTransactionsByUser(ctx, userID)
}

// Withdraw validates the amount and waits out the simulated settlement.
// The simulation always succeeds once the delay elapses; a cancelled
// context is the only way out early.
func (uc *WalletUsecase) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*usecasecontract.WithdrawalReceipt, error) {
	if amount.LessThan(uc.config.GetMinWithdrawal()) {
		return nil, ErrAmountBelowMinimum
	}
	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	if err := simulate.Run(ctx, uc.config.GetWithdrawalDelay()); err != nil {
		uc.logger.Infof("withdrawal for %s cancelled: %v", userID, err)
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	uc.logger.Infof("withdrawal of %s VIBRA processed for %s", amount.String(), userID)
	return &usecasecontract.WithdrawalReceipt{
		Amount: amount,
		Fee:    uc.config.GetWithdrawalFee(),
		Status: string(entity.TransactionStatusCompleted),
	}, nil
}
