package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/banking-transaction-api/src/internal/adapter/http/controller"
	"github.com/api-sage/banking-transaction-api/src/internal/adapter/http/middleware"
	"github.com/api-sage/banking-transaction-api/src/internal/adapter/http/router"
	"github.com/api-sage/banking-transaction-api/src/internal/adapter/repository/memory"
	"github.com/api-sage/banking-transaction-api/src/internal/commons"
	"github.com/api-sage/banking-transaction-api/src/internal/config"
	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/api-sage/banking-transaction-api/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountRepo := memory.NewAccountRepository()
	transactionRepo := memory.NewTransactionRepository()
	locks := commons.NewLockRegistry()

	if err := seedAccount(accountRepo, cfg); err != nil {
		log.Fatalf("seed account: %v", err)
	}

	ledgerService := services.NewLedgerService(accountRepo, transactionRepo, locks)
	rateLimiter := services.NewRateLimiterService(cfg.RateLimitRequests, cfg.RateLimitWindow)

	mux := router.New(
		controller.NewLedgerController(ledgerService),
		controller.NewTransactionsController(),
		middleware.RateLimit(rateLimiter),
	)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	log.Printf("banking transaction api listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}

func seedAccount(accountRepo *memory.AccountRepository, cfg config.Config) error {
	balance, err := decimal.NewFromString(cfg.SeedAccountBalance)
	if err != nil {
		return err
	}

	_, err = accountRepo.Create(context.Background(), domain.Account{
		ID:       cfg.SeedAccountID,
		Balance:  balance,
		Currency: cfg.SeedAccountCurrency,
		Version:  1,
	})
	return err
}
