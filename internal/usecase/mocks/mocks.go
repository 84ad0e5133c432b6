package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// MockEventStore is a mock implementation of usecase.EventStore. Without
// overrides it behaves as an in-memory append-only store.
type MockEventStore struct {
	mu   sync.RWMutex
	logs map[string][]domain.WalletEvent

	AppendFunc func(ctx context.Context, walletID domain.WalletID, events []domain.WalletEvent, expectedVersion int) error
	LoadFunc   func(ctx context.Context, walletID domain.WalletID) ([]domain.WalletEvent, error)
}

func NewMockEventStore() *MockEventStore {
	return &MockEventStore{
		logs: make(map[string][]domain.WalletEvent),
	}
}

func (m *MockEventStore) Append(ctx context.Context, walletID domain.WalletID, events []domain.WalletEvent, expectedVersion int) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, walletID, events, expectedVersion)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := walletID.String()
	if len(m.logs[key]) != expectedVersion {
		return domain.ErrConcurrentUpdate
	}

	m.logs[key] = append(m.logs[key], events...)

	return nil
}

func (m *MockEventStore) Load(ctx context.Context, walletID domain.WalletID) ([]domain.WalletEvent, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, walletID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	events, ok := m.logs[walletID.String()]
	if !ok || len(events) == 0 {
		return nil, domain.ErrWalletNotFound
	}

	out := make([]domain.WalletEvent, len(events))
	copy(out, events)

	return out, nil
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator. Without
// overrides it generates random ids.
type MockIDGenerator struct {
	NewWalletIDFunc  func() domain.WalletID
	NewPaymentIDFunc func() domain.PaymentID
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) NewWalletID() domain.WalletID {
	if m.NewWalletIDFunc != nil {
		return m.NewWalletIDFunc()
	}

	return domain.NewWalletID()
}

func (m *MockIDGenerator) NewPaymentID() domain.PaymentID {
	if m.NewPaymentIDFunc != nil {
		return m.NewPaymentIDFunc()
	}

	return domain.NewPaymentID()
}

// MockViewCache is a mock implementation of usecase.ViewCache. Without
// overrides it behaves as a map-backed cache that ignores TTLs.
type MockViewCache struct {
	mu    sync.RWMutex
	views map[string]*usecase.WalletView

	GetFunc        func(ctx context.Context, walletID domain.WalletID) (*usecase.WalletView, error)
	SetFunc        func(ctx context.Context, view *usecase.WalletView, ttl time.Duration) error
	InvalidateFunc func(ctx context.Context, walletID domain.WalletID) error
}

func NewMockViewCache() *MockViewCache {
	return &MockViewCache{
		views: make(map[string]*usecase.WalletView),
	}
}

func (m *MockViewCache) Get(ctx context.Context, walletID domain.WalletID) (*usecase.WalletView, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, walletID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.views[walletID.String()], nil
}

func (m *MockViewCache) Set(ctx context.Context, view *usecase.WalletView, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, view, ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.views[view.WalletID] = view

	return nil
}

func (m *MockViewCache) Invalidate(ctx context.Context, walletID domain.WalletID) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, walletID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.views, walletID.String())

	return nil
}

// MockClock is a mock implementation of usecase.Clock returning a fixed
// instant.
type MockClock struct {
	NowFunc func() time.Time
}

func NewMockClock(at time.Time) *MockClock {
	return &MockClock{NowFunc: func() time.Time { return at }}
}

func (m *MockClock) Now() time.Time {
	return m.NowFunc()
}

// MockMetrics is a mock implementation of usecase.MetricsRecorder that
// counts calls.
type MockMetrics struct {
	mu sync.Mutex

	Created    int
	Credited   int
	Debited    int
	FeesTotal  int64
	Rejections map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Rejections: make(map[string]int)}
}

func (m *MockMetrics) WalletCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created++
}

func (m *MockMetrics) WalletCredited() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Credited++
}

func (m *MockMetrics) WalletDebited(feeMinorUnits int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Debited++
	m.FeesTotal += feeMinorUnits
}

func (m *MockMetrics) WalletOperationRejected(operation, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejections[operation+"/"+reason]++
}
