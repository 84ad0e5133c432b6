package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one kind, so callers
// can classify failures with errors.Is without matching individual sentinels.
var (
	// ErrValidation marks malformed input. Retrying with the same input
	// reproduces the same failure.
	ErrValidation = errors.New("validation error")

	// ErrActionNotAllowed marks a well-formed request refused by a business
	// rule. The caller may legitimately retry later.
	ErrActionNotAllowed = errors.New("action not allowed")

	// ErrNotFound marks a missing resource.
	ErrNotFound = errors.New("not found")
)

// Validation errors
var (
	ErrInvalidID         = fmt.Errorf("%w: invalid id", ErrValidation)
	ErrInvalidCurrency   = fmt.Errorf("%w: invalid currency code", ErrValidation)
	ErrZeroAmount        = fmt.Errorf("%w: payment amount cannot be zero", ErrValidation)
	ErrInvalidFeeRate    = fmt.Errorf("%w: fee percentage must be between 0 and 1", ErrValidation)
	ErrCurrencyMismatch  = fmt.Errorf("%w: payment currency differs from wallet currency", ErrValidation)
	ErrPaymentNotCredit  = fmt.Errorf("%w: credit for this payment is not allowed", ErrValidation)
	ErrPaymentNotDebit   = fmt.Errorf("%w: debit for this payment is not allowed", ErrValidation)
	ErrEventNotSupported = fmt.Errorf("%w: event not supported for wallet", ErrValidation)
	ErrEmptyEventLog     = fmt.Errorf("%w: wallet event log is empty", ErrValidation)
)

// Business-rule errors
var (
	ErrDailyDebitLimitReached = fmt.Errorf("%w: maximum debit payments limit is reached for today", ErrActionNotAllowed)
	ErrInsufficientBalance    = fmt.Errorf("%w: not enough balance in wallet", ErrActionNotAllowed)
)

// Lookup and persistence errors
var (
	ErrWalletNotFound = fmt.Errorf("%w: wallet not found", ErrNotFound)

	// ErrConcurrentUpdate is returned by the event store when a save
	// observes that the underlying log grew since it was read.
	ErrConcurrentUpdate = errors.New("wallet was modified concurrently")
)
