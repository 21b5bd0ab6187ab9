package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/google/uuid"
)

// TransactionRepository is an append-only record store. Records are never
// mutated or removed once appended.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: make(map[string]domain.Transaction)}
}

func (r *TransactionRepository) Append(_ context.Context, txn domain.Transaction) (domain.Transaction, error) {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transactions[txn.ID]; exists {
		return domain.Transaction{}, domain.ErrTransactionExists
	}

	r.transactions[txn.ID] = txn
	return txn, nil
}

func (r *TransactionRepository) GetByID(_ context.Context, transactionID string) (domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, ok := r.transactions[transactionID]
	if !ok {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return txn, nil
}
