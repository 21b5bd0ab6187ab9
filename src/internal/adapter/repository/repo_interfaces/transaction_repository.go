package repo_interfaces

import (
	"context"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
)

type TransactionRepository interface {
	// Append stores an immutable transaction record, assigning an
	// identifier and creation timestamp when unset.
	Append(ctx context.Context, txn domain.Transaction) (domain.Transaction, error)
	GetByID(ctx context.Context, transactionID string) (domain.Transaction, error)
}
