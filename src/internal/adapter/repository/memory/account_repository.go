package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository keeps account records in a process-local map. It
// guarantees single-call atomicity only; read-validate-write consistency
// across calls is the responsibility of the caller's account lock.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		return domain.Account{}, domain.ErrAccountExists
	}

	now := time.Now().UTC()
	if account.Version == 0 {
		account.Version = 1
	}
	account.CreatedAt = now
	account.UpdatedAt = now

	stored := account
	r.accounts[account.ID] = &stored
	return account, nil
}

func (r *AccountRepository) GetByID(_ context.Context, accountID string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return *account, nil
}

func (r *AccountRepository) UpdateBalance(_ context.Context, accountID string, newBalance decimal.Decimal, expectedVersion int64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if account.Version != expectedVersion {
		return domain.Account{}, domain.ErrStaleVersion
	}

	account.Balance = newBalance
	account.Version++
	account.UpdatedAt = time.Now().UTC()
	return *account, nil
}
