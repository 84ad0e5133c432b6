// Package memory provides an in-memory event store for development and
// tests. Logs live only as long as the process does.
package memory

import (
	"context"
	"sync"

	"github.com/iho/gowallet/internal/domain"
)

// EventStore implements usecase.EventStore on top of a mutex-guarded map.
type EventStore struct {
	mu   sync.RWMutex
	logs map[string][]domain.WalletEvent
}

// NewEventStore creates an empty in-memory event store.
func NewEventStore() *EventStore {
	return &EventStore{
		logs: make(map[string][]domain.WalletEvent),
	}
}

// Append stores events at log positions starting from expectedVersion.
func (s *EventStore) Append(ctx context.Context, walletID domain.WalletID, events []domain.WalletEvent, expectedVersion int) error {
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := walletID.String()
	current := len(s.logs[key])

	if current != expectedVersion {
		if current == 0 {
			return domain.ErrWalletNotFound
		}
		return domain.ErrConcurrentUpdate
	}

	s.logs[key] = append(s.logs[key], events...)

	return nil
}

// Load returns a copy of the wallet's event log.
func (s *EventStore) Load(ctx context.Context, walletID domain.WalletID) ([]domain.WalletEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.logs[walletID.String()]
	if len(events) == 0 {
		return nil, domain.ErrWalletNotFound
	}

	out := make([]domain.WalletEvent, len(events))
	copy(out, events)

	return out, nil
}
