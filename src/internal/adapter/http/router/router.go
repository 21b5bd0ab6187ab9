package router

import "net/http"

type LedgerRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

type TransactionsRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, rateLimitMiddleware func(http.Handler) http.Handler)
}

func New(
	ledgerController LedgerRouteRegistrar,
	transactionsController TransactionsRouteRegistrar,
	rateLimitMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if ledgerController != nil {
		ledgerController.RegisterRoutes(mux)
	}
	if transactionsController != nil {
		transactionsController.RegisterRoutes(mux, rateLimitMiddleware)
	}

	return mux
}
