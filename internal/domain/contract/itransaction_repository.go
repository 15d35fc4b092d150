package contract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// ITransactionRepository exposes the seeded, read-only VIBRA ledger.
// Nothing in the system appends to it.
type ITransactionRepository interface {
	ListTransactionsByUser(ctx context.Context, userID string) ([]entity.Transaction, error)
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)
}
