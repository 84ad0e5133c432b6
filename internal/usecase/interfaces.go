package usecase

import (
	"context"
	"time"

	"github.com/iho/gowallet/internal/domain"
)

// EventStore persists wallet event logs, append-only, keyed by wallet id.
type EventStore interface {
	// Append stores events at log positions starting from expectedVersion.
	// It returns domain.ErrConcurrentUpdate when the stored log has already
	// grown past expectedVersion (the lost-update guard).
	Append(ctx context.Context, walletID domain.WalletID, events []domain.WalletEvent, expectedVersion int) error

	// Load returns the full ordered event log for a wallet, or
	// domain.ErrWalletNotFound when no log exists.
	Load(ctx context.Context, walletID domain.WalletID) ([]domain.WalletEvent, error)
}

// IDGenerator creates new random identifiers.
type IDGenerator interface {
	NewWalletID() domain.WalletID
	NewPaymentID() domain.PaymentID
}

// Clock supplies the current time. Operations read it exactly once so
// date-dependent rules stay internally consistent and testable.
type Clock interface {
	Now() time.Time
}

// ViewCache caches wallet read-model views. Get returns (nil, nil) on a
// cache miss.
type ViewCache interface {
	Get(ctx context.Context, walletID domain.WalletID) (*WalletView, error)
	Set(ctx context.Context, view *WalletView, ttl time.Duration) error
	Invalidate(ctx context.Context, walletID domain.WalletID) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)

	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// MetricsRecorder records wallet operation outcomes.
type MetricsRecorder interface {
	WalletCreated()
	WalletCredited()
	WalletDebited(feeMinorUnits int64)
	WalletOperationRejected(operation, reason string)
}
