package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/banking-transaction-api/src/internal/adapter/http/models"
	"github.com/api-sage/banking-transaction-api/src/internal/commons"
	"github.com/api-sage/banking-transaction-api/src/internal/domain"
)

type LedgerService interface {
	Debit(ctx context.Context, accountID string, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	Credit(ctx context.Context, accountID string, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	GetBalance(ctx context.Context, accountID string) (commons.Response[models.BalanceResponse], error)
	GetTransaction(ctx context.Context, transactionID string) (commons.Response[models.TransactionRecordResponse], error)
}

type LedgerController struct {
	service LedgerService
}

func NewLedgerController(service LedgerService) *LedgerController {
	return &LedgerController{service: service}
}

func (c *LedgerController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/accounts/{account_id}/debit", c.debit)
	mux.HandleFunc("POST /api/v1/accounts/{account_id}/credit", c.credit)
	mux.HandleFunc("GET /api/v1/accounts/{account_id}/balance", c.getBalance)
	mux.HandleFunc("GET /api/v1/transactions/{transaction_id}", c.getTransaction)
}

func (c *LedgerController) debit(w http.ResponseWriter, r *http.Request) {
	c.postTransaction(w, r, c.service.Debit)
}

func (c *LedgerController) credit(w http.ResponseWriter, r *http.Request) {
	c.postTransaction(w, r, c.service.Credit)
}

func (c *LedgerController) postTransaction(
	w http.ResponseWriter,
	r *http.Request,
	operation func(ctx context.Context, accountID string, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error),
) {
	var req models.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	response, err := operation(r.Context(), r.PathValue("account_id"), req)
	if err != nil {
		writeJSON(w, transactionStatus(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *LedgerController) getBalance(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetBalance(r.Context(), r.PathValue("account_id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrAccountNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *LedgerController) getTransaction(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetTransaction(r.Context(), r.PathValue("transaction_id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrTransactionNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func transactionStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCurrencyMismatch), errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
