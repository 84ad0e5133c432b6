// Package metrics registers Prometheus metrics for wallet operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements usecase.MetricsRecorder.
type Metrics struct {
	WalletsCreated     prometheus.Counter
	CreditsApplied     prometheus.Counter
	DebitsApplied      prometheus.Counter
	DebitFees          prometheus.Counter
	OperationsRejected *prometheus.CounterVec
}

// New creates and registers wallet metrics against reg. Tests pass a fresh
// registry; the server passes prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		WalletsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_wallets_created_total",
			Help: "Total number of wallets created",
		}),
		CreditsApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_credits_applied_total",
			Help: "Total number of credits admitted to wallets",
		}),
		DebitsApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_debits_applied_total",
			Help: "Total number of debits admitted to wallets",
		}),
		DebitFees: factory.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_debit_fees_minor_units_total",
			Help: "Total transaction fees charged on debits, in minor units",
		}),
		OperationsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_operations_rejected_total",
				Help: "Total wallet operations rejected, by operation and reason",
			},
			[]string{"operation", "reason"},
		),
	}
}

// WalletCreated records a successful wallet creation.
func (m *Metrics) WalletCreated() {
	m.WalletsCreated.Inc()
}

// WalletCredited records a successful credit.
func (m *Metrics) WalletCredited() {
	m.CreditsApplied.Inc()
}

// WalletDebited records a successful debit and its fee. Fees are recorded
// negative in the event log and counted here by magnitude.
func (m *Metrics) WalletDebited(feeMinorUnits int64) {
	m.DebitsApplied.Inc()

	if feeMinorUnits < 0 {
		feeMinorUnits = -feeMinorUnits
	}
	m.DebitFees.Add(float64(feeMinorUnits))
}

// WalletOperationRejected records a rejected operation.
func (m *Metrics) WalletOperationRejected(operation, reason string) {
	m.OperationsRejected.WithLabelValues(operation, reason).Inc()
}
