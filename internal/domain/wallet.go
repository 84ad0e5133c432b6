package domain

import (
	"fmt"
	"time"
)

// Default debit business constants.
const (
	DefaultMaxDailyDebits = 3
	DefaultDebitFeeRate   = 0.005
)

// DebitPolicy holds the business constants that govern debits.
type DebitPolicy struct {
	// MaxDailyDebits is the maximum number of debit payments admitted per
	// UTC calendar day.
	MaxDailyDebits int

	// FeeRate is the proportional transaction fee applied to every debit,
	// in [0, 1].
	FeeRate float64
}

// DefaultDebitPolicy returns the standard debit policy.
func DefaultDebitPolicy() DebitPolicy {
	return DebitPolicy{
		MaxDailyDebits: DefaultMaxDailyDebits,
		FeeRate:        DefaultDebitFeeRate,
	}
}

// WalletOption configures a wallet at construction or reconstruction.
type WalletOption func(*Wallet)

// WithDebitPolicy overrides the default debit policy.
func WithDebitPolicy(policy DebitPolicy) WalletOption {
	return func(w *Wallet) {
		w.policy = policy
	}
}

// Wallet is the event-sourced wallet aggregate. The event log is the sole
// source of truth; walletID, ownerID and balance cache the result of folding
// the log and change only by extending the fold.
type Wallet struct {
	walletID  WalletID
	ownerID   OwnerID
	balance   Money
	events    []WalletEvent
	committed int
	policy    DebitPolicy
}

// NewWallet creates a wallet for the given owner and currency. The only way
// a wallet comes into existence is through its WalletCreated event, which
// this constructor records; the balance starts at zero.
func NewWallet(walletID WalletID, ownerID OwnerID, currency string, opts ...WalletOption) (*Wallet, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}

	w := newEmptyWallet(opts)

	if err := w.record(WalletCreated{
		WalletID: walletID,
		OwnerID:  ownerID,
		Currency: currency,
	}); err != nil {
		return nil, err
	}

	return w, nil
}

// ReconstructWallet rebuilds a wallet by replaying its persisted event log
// in order. Replay is a pure fold: historical events are trusted and not
// re-validated, so date-dependent rules are never reinterpreted at load
// time. Validation runs only on events appended after reconstruction.
func ReconstructWallet(events []WalletEvent, opts ...WalletOption) (*Wallet, error) {
	if len(events) == 0 {
		return nil, ErrEmptyEventLog
	}

	w := newEmptyWallet(opts)

	for _, event := range events {
		if err := w.apply(event); err != nil {
			return nil, err
		}

		w.events = append(w.events, event)
	}

	w.committed = len(w.events)

	return w, nil
}

func newEmptyWallet(opts []WalletOption) *Wallet {
	w := &Wallet{policy: DefaultDebitPolicy()}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Credit admits a credit payment. It rejects payments that are not credits
// or whose currency differs from the wallet's. On success exactly one
// WalletCredited event is appended; no fee is charged.
func (w *Wallet) Credit(payment Payment) error {
	if !payment.IsCredit() {
		return ErrPaymentNotCredit
	}

	if payment.Currency() != w.balance.Currency() {
		return ErrCurrencyMismatch
	}

	return w.record(WalletCredited{Payment: payment})
}

// Debit admits a debit payment. now anchors the daily debit cap and must be
// the single clock reading of the enclosing operation. The transaction fee
// is attached before the balance check because admission evaluates the total
// cost, principal plus fee. A rejected debit appends nothing.
func (w *Wallet) Debit(payment Payment, now time.Time) error {
	if !payment.IsDebit() {
		return ErrPaymentNotDebit
	}

	if payment.Currency() != w.balance.Currency() {
		return ErrCurrencyMismatch
	}

	if w.countDebitsOn(now) >= w.policy.MaxDailyDebits {
		return ErrDailyDebitLimitReached
	}

	withFee, err := payment.AddPercentageTransactionFee(w.policy.FeeRate)
	if err != nil {
		return err
	}

	prospective, err := w.balance.Add(withFee.TotalAmount())
	if err != nil {
		return err
	}

	if prospective.IsNegative() {
		return ErrInsufficientBalance
	}

	return w.record(WalletDebited{Payment: withFee})
}

// WalletID returns the wallet identifier.
func (w *Wallet) WalletID() WalletID {
	return w.walletID
}

// OwnerID returns the owner identifier.
func (w *Wallet) OwnerID() OwnerID {
	return w.ownerID
}

// Balance returns the current balance derived from the event log.
func (w *Wallet) Balance() Money {
	return w.balance
}

// Currency returns the wallet currency.
func (w *Wallet) Currency() string {
	return w.balance.Currency()
}

// Events returns the full ordered event log.
func (w *Wallet) Events() []WalletEvent {
	events := make([]WalletEvent, len(w.events))
	copy(events, w.events)

	return events
}

// UncommittedEvents returns the events appended since the last load or
// MarkCommitted call, in order.
func (w *Wallet) UncommittedEvents() []WalletEvent {
	events := make([]WalletEvent, len(w.events)-w.committed)
	copy(events, w.events[w.committed:])

	return events
}

// Version returns the number of events already persisted. The event store
// uses it as the expected log length when appending.
func (w *Wallet) Version() int {
	return w.committed
}

// MarkCommitted records that all events have been persisted.
func (w *Wallet) MarkCommitted() {
	w.committed = len(w.events)
}

func (w *Wallet) countDebitsOn(day time.Time) int {
	count := 0

	for _, event := range w.events {
		debited, ok := event.(WalletDebited)
		if !ok || !debited.Payment.OccurredOn(day) {
			continue
		}

		count++
	}

	return count
}

// record applies the event and, only on success, appends it to the log.
// Rejected operations therefore leave the log untouched.
func (w *Wallet) record(event WalletEvent) error {
	if err := w.apply(event); err != nil {
		return err
	}

	w.events = append(w.events, event)

	return nil
}

// apply folds a single event into the cached state. The switch is exhaustive
// over the closed variant set; the default arm guards against log corruption
// and schema drift.
func (w *Wallet) apply(event WalletEvent) error {
	switch e := event.(type) {
	case WalletCreated:
		w.walletID = e.WalletID
		w.ownerID = e.OwnerID
		w.balance = ZeroMoney(e.Currency)
	case WalletCredited:
		balance, err := w.balance.Add(e.Payment.Amount())
		if err != nil {
			return err
		}

		w.balance = balance
	case WalletDebited:
		balance, err := w.balance.Add(e.Payment.Amount())
		if err != nil {
			return err
		}

		balance, err = balance.Add(e.Payment.Fee())
		if err != nil {
			return err
		}

		w.balance = balance
	default:
		return fmt.Errorf("%w: %T", ErrEventNotSupported, event)
	}

	return nil
}
