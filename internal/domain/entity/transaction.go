package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the type of a ledger entry.
type TransactionType string

const (
	TransactionTypeReward     TransactionType = "reward"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTip        TransactionType = "tip"
)

// TransactionStatus defines the settlement status of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is a single VIBRA ledger entry. The ledger is read-only:
// entries are seeded at startup, withdrawals are negative by convention.
type Transaction struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`
	TxHash      *string           `json:"tx_hash,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
