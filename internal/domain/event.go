package domain

// Event kinds as persisted in the wallet event log.
const (
	EventKindWalletCreated  = "wallet.created"
	EventKindWalletCredited = "wallet.credited"
	EventKindWalletDebited  = "wallet.debited"
)

// WalletEvent is a fact recorded in a wallet's append-only event log. The
// variant set is closed: WalletCreated, WalletCredited and WalletDebited are
// the only persisted facts.
type WalletEvent interface {
	Kind() string
}

// WalletCreated is the first and only creation event of a wallet.
type WalletCreated struct {
	WalletID WalletID
	OwnerID  OwnerID
	Currency string
}

// Kind returns the persisted event kind.
func (WalletCreated) Kind() string { return EventKindWalletCreated }

// WalletCredited records an admitted credit payment.
type WalletCredited struct {
	Payment Payment
}

// Kind returns the persisted event kind.
func (WalletCredited) Kind() string { return EventKindWalletCredited }

// WalletDebited records an admitted debit payment. The payment carries its
// transaction fee: the fee is attached before the event is recorded.
type WalletDebited struct {
	Payment Payment
}

// Kind returns the persisted event kind.
func (WalletDebited) Kind() string { return EventKindWalletDebited }
