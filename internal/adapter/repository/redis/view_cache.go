// Package redis caches wallet read models and idempotency keys. The cache
// is best effort; the event log stays authoritative.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// ViewCache implements usecase.ViewCache using Redis.
type ViewCache struct {
	client *redis.Client
	prefix string
}

// NewViewCache creates a new ViewCache.
func NewViewCache(client *redis.Client) *ViewCache {
	return &ViewCache{
		client: client,
		prefix: "wallet:view:",
	}
}

// Get returns the cached view for a wallet, or (nil, nil) on a miss.
func (c *ViewCache) Get(ctx context.Context, walletID domain.WalletID) (*usecase.WalletView, error) {
	data, err := c.client.Get(ctx, c.prefix+walletID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get wallet view: %w", err)
	}

	var view usecase.WalletView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("decode wallet view: %w", err)
	}

	return &view, nil
}

// Set stores the view with a TTL.
func (c *ViewCache) Set(ctx context.Context, view *usecase.WalletView, ttl time.Duration) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode wallet view: %w", err)
	}

	if err := c.client.Set(ctx, c.prefix+view.WalletID, data, ttl).Err(); err != nil {
		return fmt.Errorf("set wallet view: %w", err)
	}

	return nil
}

// Invalidate drops the cached view for a wallet.
func (c *ViewCache) Invalidate(ctx context.Context, walletID domain.WalletID) error {
	if err := c.client.Del(ctx, c.prefix+walletID.String()).Err(); err != nil {
		return fmt.Errorf("invalidate wallet view: %w", err)
	}

	return nil
}
