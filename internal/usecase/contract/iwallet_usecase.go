package usecasecontract

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// WalletSummary is the wallet dashboard header data.
type WalletSummary struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	PendingRewards   decimal.Decimal `json:"pending_rewards"`
	TotalEarned      decimal.Decimal `json:"total_earned"`
	USDEstimate      decimal.Decimal `json:"usd_estimate"`
	WalletAddress    *string         `json:"wallet_address,omitempty"`
}

// WithdrawalReceipt reports a completed simulated withdrawal. No ledger
// entry is written; the ledger is read-only.
type WithdrawalReceipt struct {
	Amount decimal.Decimal `json:"amount"`
	Fee    decimal.Decimal `json:"fee"`
	Status string          `json:"status"`
}

// IWalletUseCase serves the wallet screen.
type IWalletUseCase interface {
	Summary(ctx context.Context, userID string) (*WalletSummary, error)
	Transactions(ctx context.Context, userID string) ([]entity.Transaction, error)
	// Withdraw runs the simulated withdrawal under the caller's context;
	// cancelling the context cancels the simulation.
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*WithdrawalReceipt, error)
}
