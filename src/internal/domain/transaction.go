package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	// TransactionStatusFailed is reserved for a future audit path; every
	// validation failure today happens before a record is created.
	TransactionStatusFailed TransactionStatus = "FAILED"
)

type Transaction struct {
	ID          string
	AccountID   string
	Type        TransactionType
	Amount      decimal.Decimal
	Currency    string
	Description string
	Reference   string
	Status      TransactionStatus
	CreatedAt   time.Time
}
