package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/iho/gowallet/internal/domain"
)

// WalletView is the flattened read model of a wallet, derived from the
// aggregate for display only. It is never authoritative; the event log is.
type WalletView struct {
	WalletID string `json:"wallet_id"`
	OwnerID  string `json:"owner_id"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// WalletUseCase orchestrates wallet commands and queries: it builds payments,
// loads wallets by replaying their event logs, lets the aggregate validate
// and admit events, and persists the result.
type WalletUseCase struct {
	store   EventStore
	cache   ViewCache
	idGen   IDGenerator
	clock   Clock
	metrics MetricsRecorder
	policy  domain.DebitPolicy
	viewTTL time.Duration
}

// WalletUseCaseConfig holds dependencies for WalletUseCase. Cache and
// Metrics are optional.
type WalletUseCaseConfig struct {
	Store   EventStore
	Cache   ViewCache
	IDGen   IDGenerator
	Clock   Clock
	Metrics MetricsRecorder
	Policy  domain.DebitPolicy
	ViewTTL time.Duration
}

// NewWalletUseCase creates a new WalletUseCase.
func NewWalletUseCase(cfg WalletUseCaseConfig) *WalletUseCase {
	if cfg.Policy == (domain.DebitPolicy{}) {
		cfg.Policy = domain.DefaultDebitPolicy()
	}

	if cfg.ViewTTL == 0 {
		cfg.ViewTTL = DefaultViewCacheTTL
	}

	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}

	return &WalletUseCase{
		store:   cfg.Store,
		cache:   cfg.Cache,
		idGen:   cfg.IDGen,
		clock:   cfg.Clock,
		metrics: cfg.Metrics,
		policy:  cfg.Policy,
		viewTTL: cfg.ViewTTL,
	}
}

// CreateWalletInput represents input for creating a wallet.
type CreateWalletInput struct {
	OwnerID  string
	Currency string
}

// CreateWallet creates a new wallet with a random id and persists its
// creation event.
func (uc *WalletUseCase) CreateWallet(ctx context.Context, input CreateWalletInput) (*WalletView, error) {
	ownerID, err := domain.ParseOwnerID(input.OwnerID)
	if err != nil {
		uc.metrics.WalletOperationRejected("create", rejectionReason(err))
		return nil, err
	}

	walletID := uc.idGen.NewWalletID()

	wallet, err := domain.NewWallet(walletID, ownerID, normalizeCurrency(input.Currency),
		domain.WithDebitPolicy(uc.policy))
	if err != nil {
		uc.metrics.WalletOperationRejected("create", rejectionReason(err))
		return nil, err
	}

	if err := uc.store.Append(ctx, walletID, wallet.UncommittedEvents(), wallet.Version()); err != nil {
		return nil, err
	}

	wallet.MarkCommitted()
	uc.metrics.WalletCreated()
	uc.invalidateView(ctx, wallet.WalletID())

	return viewFromWallet(wallet), nil
}

// CreditWalletInput represents input for crediting a wallet. Amount is a
// signed minor-unit amount and must be positive for a credit.
type CreditWalletInput struct {
	WalletID string
	Amount   int64
	Currency string
}

// CreditWallet loads the wallet, admits a credit payment and persists the
// new event.
func (uc *WalletUseCase) CreditWallet(ctx context.Context, input CreditWalletInput) (*WalletView, error) {
	wallet, err := uc.loadWallet(ctx, input.WalletID)
	if err != nil {
		uc.metrics.WalletOperationRejected("credit", rejectionReason(err))
		return nil, err
	}

	payment, err := domain.NewPayment(uc.idGen.NewPaymentID(),
		domain.NewMoney(input.Amount, normalizeCurrency(input.Currency)), uc.clock.Now())
	if err != nil {
		uc.metrics.WalletOperationRejected("credit", rejectionReason(err))
		return nil, err
	}

	if err := wallet.Credit(payment); err != nil {
		uc.metrics.WalletOperationRejected("credit", rejectionReason(err))
		return nil, err
	}

	if err := uc.store.Append(ctx, wallet.WalletID(), wallet.UncommittedEvents(), wallet.Version()); err != nil {
		return nil, err
	}

	wallet.MarkCommitted()
	uc.metrics.WalletCredited()
	uc.invalidateView(ctx, wallet.WalletID())

	return viewFromWallet(wallet), nil
}

// DebitWalletInput represents input for debiting a wallet. Amount is a
// signed minor-unit amount and must be negative for a debit.
type DebitWalletInput struct {
	WalletID string
	Amount   int64
	Currency string
}

// DebitWallet loads the wallet, admits a debit payment (attaching the
// transaction fee) and persists the new event.
func (uc *WalletUseCase) DebitWallet(ctx context.Context, input DebitWalletInput) (*WalletView, error) {
	wallet, err := uc.loadWallet(ctx, input.WalletID)
	if err != nil {
		uc.metrics.WalletOperationRejected("debit", rejectionReason(err))
		return nil, err
	}

	// A single clock reading anchors both the payment date and the daily
	// debit cap.
	now := uc.clock.Now()

	payment, err := domain.NewPayment(uc.idGen.NewPaymentID(),
		domain.NewMoney(input.Amount, normalizeCurrency(input.Currency)), now)
	if err != nil {
		uc.metrics.WalletOperationRejected("debit", rejectionReason(err))
		return nil, err
	}

	if err := wallet.Debit(payment, now); err != nil {
		uc.metrics.WalletOperationRejected("debit", rejectionReason(err))
		return nil, err
	}

	if err := uc.store.Append(ctx, wallet.WalletID(), wallet.UncommittedEvents(), wallet.Version()); err != nil {
		return nil, err
	}

	uncommitted := wallet.UncommittedEvents()
	wallet.MarkCommitted()

	fee := int64(0)
	if len(uncommitted) == 1 {
		if debited, ok := uncommitted[0].(domain.WalletDebited); ok {
			fee = debited.Payment.Fee().Amount()
		}
	}

	uc.metrics.WalletDebited(fee)
	uc.invalidateView(ctx, wallet.WalletID())

	return viewFromWallet(wallet), nil
}

// GetWallet returns the wallet view, from cache when possible and otherwise
// by replaying the event log.
func (uc *WalletUseCase) GetWallet(ctx context.Context, id string) (*WalletView, error) {
	walletID, err := domain.ParseWalletID(id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		// Cache errors fall through to a replay; the log is authoritative.
		if view, err := uc.cache.Get(ctx, walletID); err == nil && view != nil {
			return view, nil
		}
	}

	events, err := uc.store.Load(ctx, walletID)
	if err != nil {
		return nil, err
	}

	wallet, err := domain.ReconstructWallet(events, domain.WithDebitPolicy(uc.policy))
	if err != nil {
		return nil, err
	}

	view := viewFromWallet(wallet)

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, view, uc.viewTTL)
	}

	return view, nil
}

func (uc *WalletUseCase) loadWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	walletID, err := domain.ParseWalletID(id)
	if err != nil {
		return nil, err
	}

	events, err := uc.store.Load(ctx, walletID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructWallet(events, domain.WithDebitPolicy(uc.policy))
}

func viewFromWallet(wallet *domain.Wallet) *WalletView {
	return &WalletView{
		WalletID: wallet.WalletID().String(),
		OwnerID:  wallet.OwnerID().String(),
		Balance:  wallet.Balance().Amount(),
		Currency: wallet.Currency(),
	}
}

// invalidateView drops the cached read model after a successful mutation.
// Cache failures are ignored; the next read repopulates from the log.
func (uc *WalletUseCase) invalidateView(ctx context.Context, walletID domain.WalletID) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, walletID)
	}
}

func normalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// rejectionReason maps an error to a low-cardinality metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDailyDebitLimitReached):
		return "daily_limit"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}

type nopMetrics struct{}

func (nopMetrics) WalletCreated()                         {}
func (nopMetrics) WalletCredited()                        {}
func (nopMetrics) WalletDebited(int64)                    {}
func (nopMetrics) WalletOperationRejected(string, string) {}
