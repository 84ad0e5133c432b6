package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gowallet/internal/domain"
)

func walletFixture(t *testing.T) *domain.Wallet {
	t.Helper()

	wallet, err := domain.NewWallet(domain.NewWalletID(), domain.NewOwnerID(), "USD")
	require.NoError(t, err)

	payment, err := domain.NewPayment(domain.NewPaymentID(),
		domain.NewMoney(1000, "USD"), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, wallet.Credit(payment))

	return wallet
}

func TestEventStore_AppendAndLoad(t *testing.T) {
	store := NewEventStore()
	ctx := context.Background()
	wallet := walletFixture(t)

	require.NoError(t, store.Append(ctx, wallet.WalletID(), wallet.UncommittedEvents(), wallet.Version()))
	wallet.MarkCommitted()

	events, err := store.Load(ctx, wallet.WalletID())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventKindWalletCreated, events[0].Kind())
	assert.Equal(t, domain.EventKindWalletCredited, events[1].Kind())

	replayed, err := domain.ReconstructWallet(events)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), replayed.Balance().Amount())
}

func TestEventStore_LoadUnknownWallet(t *testing.T) {
	store := NewEventStore()

	_, err := store.Load(context.Background(), domain.NewWalletID())
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestEventStore_AppendVersionConflict(t *testing.T) {
	store := NewEventStore()
	ctx := context.Background()
	wallet := walletFixture(t)

	require.NoError(t, store.Append(ctx, wallet.WalletID(), wallet.UncommittedEvents(), wallet.Version()))

	// Re-appending at a stale version must be rejected.
	err := store.Append(ctx, wallet.WalletID(), wallet.UncommittedEvents(), wallet.Version())
	require.ErrorIs(t, err, domain.ErrConcurrentUpdate)

	events, err := store.Load(ctx, wallet.WalletID())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventStore_AppendToMissingLog(t *testing.T) {
	store := NewEventStore()
	wallet := walletFixture(t)

	err := store.Append(context.Background(), wallet.WalletID(), wallet.UncommittedEvents(), 5)
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestEventStore_LoadReturnsCopy(t *testing.T) {
	store := NewEventStore()
	ctx := context.Background()
	wallet := walletFixture(t)

	require.NoError(t, store.Append(ctx, wallet.WalletID(), wallet.UncommittedEvents(), wallet.Version()))

	first, err := store.Load(ctx, wallet.WalletID())
	require.NoError(t, err)
	first[0] = domain.WalletCredited{}

	second, err := store.Load(ctx, wallet.WalletID())
	require.NoError(t, err)
	assert.Equal(t, domain.EventKindWalletCreated, second[0].Kind())
}
