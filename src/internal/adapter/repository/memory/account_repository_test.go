package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/shopspring/decimal"
)

func seedAccount(t *testing.T, repo *AccountRepository) domain.Account {
	t.Helper()

	account, err := repo.Create(context.Background(), domain.Account{
		ID:       "12345",
		Balance:  decimal.RequireFromString("1000.00"),
		Currency: "USD",
		Version:  1,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestAccountRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("error = %v, want ErrAccountNotFound", err)
	}
}

func TestAccountRepositoryCreateDuplicate(t *testing.T) {
	repo := NewAccountRepository()
	seedAccount(t, repo)

	_, err := repo.Create(context.Background(), domain.Account{ID: "12345", Currency: "USD"})
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("error = %v, want ErrAccountExists", err)
	}
}

func TestAccountRepositoryUpdateBalanceIncrementsVersion(t *testing.T) {
	repo := NewAccountRepository()
	seedAccount(t, repo)

	updated, err := repo.UpdateBalance(context.Background(), "12345", decimal.RequireFromString("850.00"), 1)
	if err != nil {
		t.Fatalf("update balance: %v", err)
	}
	if updated.Version != 2 {
		t.Fatalf("version = %d, want 2", updated.Version)
	}
	if !updated.Balance.Equal(decimal.RequireFromString("850.00")) {
		t.Fatalf("balance = %s, want 850.00", updated.Balance)
	}

	updated, err = repo.UpdateBalance(context.Background(), "12345", decimal.RequireFromString("900.00"), 2)
	if err != nil {
		t.Fatalf("second update balance: %v", err)
	}
	if updated.Version != 3 {
		t.Fatalf("version = %d, want 3", updated.Version)
	}
}

func TestAccountRepositoryUpdateBalanceStaleVersion(t *testing.T) {
	repo := NewAccountRepository()
	seedAccount(t, repo)

	_, err := repo.UpdateBalance(context.Background(), "12345", decimal.RequireFromString("850.00"), 7)
	if !errors.Is(err, domain.ErrStaleVersion) {
		t.Fatalf("error = %v, want ErrStaleVersion", err)
	}

	account, err := repo.GetByID(context.Background(), "12345")
	if err != nil {
		t.Fatalf("reload account: %v", err)
	}
	if account.Version != 1 || !account.Balance.Equal(decimal.RequireFromString("1000.00")) {
		t.Fatalf("stale write mutated account: balance=%s version=%d", account.Balance, account.Version)
	}
}

func TestAccountRepositoryUpdateBalanceNotFound(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.UpdateBalance(context.Background(), "missing", decimal.Zero, 1)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("error = %v, want ErrAccountNotFound", err)
	}
}

func TestAccountRepositoryGetByIDReturnsCopy(t *testing.T) {
	repo := NewAccountRepository()
	seedAccount(t, repo)

	account, err := repo.GetByID(context.Background(), "12345")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}

	account.Balance = decimal.RequireFromString("0.01")
	account.Version = 42

	reloaded, err := repo.GetByID(context.Background(), "12345")
	if err != nil {
		t.Fatalf("reload account: %v", err)
	}
	if !reloaded.Balance.Equal(decimal.RequireFromString("1000.00")) || reloaded.Version != 1 {
		t.Fatalf("caller mutation leaked into store: balance=%s version=%d", reloaded.Balance, reloaded.Version)
	}
}
