package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const minReferenceLength = 5

// TransactionRequest is the body for both the debit and credit routes;
// the two differ only in the funds check applied by the service.
type TransactionRequest struct {
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	Description          string          `json:"description,omitempty"`
	TransactionReference string          `json:"transaction_reference"`
}

func (r TransactionRequest) Validate() error {
	var errs []string

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if len(currency) != 3 || !lettersOnly(currency) {
		errs = append(errs, "currency must be a 3-letter code")
	}

	if len(strings.TrimSpace(r.TransactionReference)) < minReferenceLength {
		errs = append(errs, "transaction_reference must be at least 5 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	AccountID     string          `json:"account_id"`
	Balance       decimal.Decimal `json:"balance"`
	Timestamp     string          `json:"timestamp"`
}

type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Version   int64           `json:"version"`
}

type TransactionRecordResponse struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description,omitempty"`
	Reference     string          `json:"reference"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

func lettersOnly(value string) bool {
	for _, ch := range value {
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}
