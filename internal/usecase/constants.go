package usecase

import "time"

const (
	// DefaultViewCacheTTL is how long wallet views stay cached. Views are
	// invalidated on every successful mutation, so the TTL only bounds
	// staleness after out-of-band writes.
	DefaultViewCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
