package controller

import (
	"net/http"

	"github.com/api-sage/banking-transaction-api/src/internal/commons"
)

// TransactionsController serves the rate-limited acknowledgement
// endpoint; admission control happens in the middleware it is
// registered behind.
type TransactionsController struct{}

func NewTransactionsController() *TransactionsController {
	return &TransactionsController{}
}

func (c *TransactionsController) RegisterRoutes(mux *http.ServeMux, rateLimitMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.processTransaction))
	if rateLimitMiddleware != nil {
		handler = rateLimitMiddleware(handler)
	}
	mux.Handle("GET /api/v1/transactions", handler)
}

func (c *TransactionsController) processTransaction(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, commons.SuccessResponse("Transaction processed successfully", struct{}{}))
}
