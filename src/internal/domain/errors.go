package domain

import "errors"

var ErrAccountNotFound = errors.New("Account not found")
var ErrAccountExists = errors.New("Account already exists")
var ErrCurrencyMismatch = errors.New("Currency mismatch")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrStaleVersion = errors.New("Account version is stale")
var ErrTransactionNotFound = errors.New("Transaction not found")
var ErrTransactionExists = errors.New("Transaction already exists")
var ErrRateLimitExceeded = errors.New("Rate limit exceeded")
