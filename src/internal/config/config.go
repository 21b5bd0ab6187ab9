package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultListenAddr = ":8080"
const defaultRateLimitRequests = 5
const defaultRateLimitWindow = time.Second
const defaultSeedAccountID = "12345"
const defaultSeedAccountBalance = "1000.00"
const defaultSeedAccountCurrency = "USD"

type Config struct {
	ListenAddr          string
	RateLimitRequests   int
	RateLimitWindow     time.Duration
	SeedAccountID       string
	SeedAccountBalance  string
	SeedAccountCurrency string
}

func Load() (Config, error) {
	cfg := Config{
		ListenAddr:          defaultListenAddr,
		RateLimitRequests:   defaultRateLimitRequests,
		RateLimitWindow:     defaultRateLimitWindow,
		SeedAccountID:       defaultSeedAccountID,
		SeedAccountBalance:  defaultSeedAccountBalance,
		SeedAccountCurrency: defaultSeedAccountCurrency,
	}

	if addr := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); addr != "" {
		cfg.ListenAddr = addr
	}

	if raw := strings.TrimSpace(os.Getenv("RATE_LIMIT_REQUESTS")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT_REQUESTS must be a positive integer, got %q", raw)
		}
		cfg.RateLimitRequests = limit
	}

	if raw := strings.TrimSpace(os.Getenv("RATE_LIMIT_WINDOW_MS")); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW_MS must be a positive integer, got %q", raw)
		}
		cfg.RateLimitWindow = time.Duration(ms) * time.Millisecond
	}

	if id := strings.TrimSpace(os.Getenv("SEED_ACCOUNT_ID")); id != "" {
		cfg.SeedAccountID = id
	}

	if balance := strings.TrimSpace(os.Getenv("SEED_ACCOUNT_BALANCE")); balance != "" {
		cfg.SeedAccountBalance = balance
	}

	if currency := strings.TrimSpace(os.Getenv("SEED_ACCOUNT_CURRENCY")); currency != "" {
		cfg.SeedAccountCurrency = strings.ToUpper(currency)
	}

	return cfg, nil
}
