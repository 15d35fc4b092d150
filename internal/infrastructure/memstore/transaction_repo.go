package memstore

import (
	"context"
	"sort"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// TransactionRepository is the read-only in-memory ledger.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a transaction repository over the shared store.
func NewTransactionRepository(store *Store) contract.ITransactionRepository {
	return &TransactionRepository{store: store}
}

var _ contract.ITransactionRepository = (*TransactionRepository)(nil)

// ListTransactionsByUser returns a user's ledger entries, newest first.
func (r *TransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Transaction
	for i := range r.store.transactions {
		if r.store.transactions[i].UserID == userID {
			out = append(out, r.store.transactions[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListTransactions returns every ledger entry, newest first.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]entity.Transaction, len(r.store.transactions))
	copy(out, r.store.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
