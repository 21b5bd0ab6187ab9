package services

import (
	"context"
	"strings"
	"time"

	"github.com/api-sage/banking-transaction-api/src/internal/adapter/http/models"
	"github.com/api-sage/banking-transaction-api/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/banking-transaction-api/src/internal/commons"
	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/api-sage/banking-transaction-api/src/internal/logger"
	"github.com/shopspring/decimal"
)

type LedgerService struct {
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
	locks           *commons.LockRegistry
}

func NewLedgerService(
	accountRepo repo_interfaces.AccountRepository,
	transactionRepo repo_interfaces.TransactionRepository,
	locks *commons.LockRegistry,
) *LedgerService {
	return &LedgerService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		locks:           locks,
	}
}

func (s *LedgerService) Debit(ctx context.Context, accountID string, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	return s.postTransaction(ctx, accountID, req, domain.TransactionTypeDebit)
}

func (s *LedgerService) Credit(ctx context.Context, accountID string, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	return s.postTransaction(ctx, accountID, req, domain.TransactionTypeCredit)
}

// postTransaction runs the full read-validate-write sequence under the
// account's lock. All failures happen before any mutation; the balance
// write and the transaction append cannot be observed apart because the
// lock is held across both.
func (s *LedgerService) postTransaction(ctx context.Context, accountID string, req models.TransactionRequest, txnType domain.TransactionType) (commons.Response[models.TransactionResponse], error) {
	logger.Info("ledger service transaction request", logger.Fields{
		"accountId": accountID,
		"type":      string(txnType),
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service transaction validation failed", err, logger.Fields{
			"accountId": accountID,
			"type":      string(txnType),
		})
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	accountID = strings.TrimSpace(accountID)
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))

	handle := s.locks.Acquire(accountID)
	handle.Lock()
	defer handle.Unlock()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Error("ledger service transaction account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Account not found"), err
	}

	if account.Currency != currency {
		logger.Error("ledger service transaction currency mismatch", domain.ErrCurrencyMismatch, logger.Fields{
			"accountId":       accountID,
			"accountCurrency": account.Currency,
			"currency":        currency,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Currency mismatch"), domain.ErrCurrencyMismatch
	}

	if txnType == domain.TransactionTypeDebit && account.Balance.LessThan(req.Amount) {
		logger.Error("ledger service debit insufficient funds", domain.ErrInsufficientFunds, logger.Fields{
			"accountId": accountID,
			"balance":   account.Balance,
			"amount":    req.Amount,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Insufficient funds"), domain.ErrInsufficientFunds
	}

	var newBalance decimal.Decimal
	if txnType == domain.TransactionTypeDebit {
		newBalance = account.Balance.Sub(req.Amount)
	} else {
		newBalance = account.Balance.Add(req.Amount)
	}

	updated, err := s.accountRepo.UpdateBalance(ctx, accountID, newBalance, account.Version)
	if err != nil {
		logger.Error("ledger service transaction balance update failed", err, logger.Fields{
			"accountId": accountID,
			"version":   account.Version,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to process transaction", "Unable to process transaction right now"), err
	}

	created, err := s.transactionRepo.Append(ctx, domain.Transaction{
		AccountID:   accountID,
		Type:        txnType,
		Amount:      req.Amount,
		Currency:    currency,
		Description: strings.TrimSpace(req.Description),
		Reference:   strings.TrimSpace(req.TransactionReference),
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		logger.Error("ledger service transaction append failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to process transaction", "Unable to process transaction right now"), err
	}

	response := models.TransactionResponse{
		TransactionID: created.ID,
		Status:        "completed",
		AccountID:     updated.ID,
		Balance:       updated.Balance,
		Timestamp:     created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("ledger service transaction success", logger.Fields{
		"accountId":     response.AccountID,
		"transactionId": response.TransactionID,
		"type":          string(txnType),
		"balance":       response.Balance,
		"version":       updated.Version,
	})

	return commons.SuccessResponse("transaction processed successfully", response), nil
}

// GetBalance reads under the account lock so a concurrently committing
// mutation can never expose a balance whose version is mid-update.
func (s *LedgerService) GetBalance(ctx context.Context, accountID string) (commons.Response[models.BalanceResponse], error) {
	accountID = strings.TrimSpace(accountID)

	handle := s.locks.Acquire(accountID)
	handle.Lock()
	defer handle.Unlock()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Error("ledger service get balance account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
	}

	response := models.BalanceResponse{
		AccountID: account.ID,
		Balance:   account.Balance,
		Currency:  account.Currency,
		Version:   account.Version,
	}

	return commons.SuccessResponse("balance fetched successfully", response), nil
}

// GetTransaction is an audit lookup; no request flow depends on it.
func (s *LedgerService) GetTransaction(ctx context.Context, transactionID string) (commons.Response[models.TransactionRecordResponse], error) {
	txn, err := s.transactionRepo.GetByID(ctx, strings.TrimSpace(transactionID))
	if err != nil {
		logger.Error("ledger service get transaction lookup failed", err, logger.Fields{
			"transactionId": transactionID,
		})
		return commons.ErrorResponse[models.TransactionRecordResponse]("Transaction not found"), err
	}

	response := models.TransactionRecordResponse{
		TransactionID: txn.ID,
		AccountID:     txn.AccountID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Description:   txn.Description,
		Reference:     txn.Reference,
		Status:        string(txn.Status),
		CreatedAt:     txn.CreatedAt.Format(time.RFC3339),
	}

	return commons.SuccessResponse("transaction fetched successfully", response), nil
}
