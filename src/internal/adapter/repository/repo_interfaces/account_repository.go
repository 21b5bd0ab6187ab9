package repo_interfaces

import (
	"context"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, accountID string) (domain.Account, error)
	// UpdateBalance writes newBalance and increments the version by one.
	// The caller must hold the account's lock for the whole
	// read-validate-write sequence; expectedVersion guards against a
	// write that raced past that discipline.
	UpdateBalance(ctx context.Context, accountID string, newBalance decimal.Decimal, expectedVersion int64) (domain.Account, error)
}
