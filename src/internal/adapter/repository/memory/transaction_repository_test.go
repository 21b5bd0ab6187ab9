package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/shopspring/decimal"
)

func TestTransactionRepositoryAppendAssignsIDAndTimestamp(t *testing.T) {
	repo := NewTransactionRepository()

	created, err := repo.Append(context.Background(), domain.Transaction{
		AccountID: "12345",
		Type:      domain.TransactionTypeDebit,
		Amount:    decimal.RequireFromString("150.00"),
		Currency:  "USD",
		Reference: "REF-0001",
		Status:    domain.TransactionStatusCompleted,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if created.ID == "" {
		t.Fatal("append did not assign a transaction id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("append did not assign a timestamp")
	}

	loaded, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if loaded.AccountID != "12345" || loaded.Type != domain.TransactionTypeDebit {
		t.Fatalf("record = %s/%s, want 12345/DEBIT", loaded.AccountID, loaded.Type)
	}
}

func TestTransactionRepositoryAppendGeneratesUniqueIDs(t *testing.T) {
	repo := NewTransactionRepository()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		created, err := repo.Append(context.Background(), domain.Transaction{
			AccountID: "12345",
			Type:      domain.TransactionTypeCredit,
			Amount:    decimal.RequireFromString("1.00"),
			Currency:  "USD",
			Status:    domain.TransactionStatusCompleted,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if _, dup := seen[created.ID]; dup {
			t.Fatalf("duplicate transaction id %s", created.ID)
		}
		seen[created.ID] = struct{}{}
	}
}

func TestTransactionRepositoryAppendRejectsDuplicateID(t *testing.T) {
	repo := NewTransactionRepository()

	_, err := repo.Append(context.Background(), domain.Transaction{ID: "txn-1", AccountID: "12345"})
	if err != nil {
		t.Fatalf("first append: %v", err)
	}

	_, err = repo.Append(context.Background(), domain.Transaction{ID: "txn-1", AccountID: "12345"})
	if !errors.Is(err, domain.ErrTransactionExists) {
		t.Fatalf("error = %v, want ErrTransactionExists", err)
	}
}

func TestTransactionRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewTransactionRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("error = %v, want ErrTransactionNotFound", err)
	}
}
