package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecordOperations(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.WalletCreated()
	m.WalletCredited()
	m.WalletCredited()
	m.WalletDebited(-5)
	m.WalletDebited(-3)
	m.WalletOperationRejected("debit", "daily_limit")
	m.WalletOperationRejected("debit", "daily_limit")
	m.WalletOperationRejected("credit", "not_found")

	if got := testutil.ToFloat64(m.WalletsCreated); got != 1 {
		t.Fatalf("expected 1 wallet created, got %v", got)
	}
	if got := testutil.ToFloat64(m.CreditsApplied); got != 2 {
		t.Fatalf("expected 2 credits, got %v", got)
	}
	if got := testutil.ToFloat64(m.DebitsApplied); got != 2 {
		t.Fatalf("expected 2 debits, got %v", got)
	}
	if got := testutil.ToFloat64(m.DebitFees); got != 8 {
		t.Fatalf("expected fee total 8, got %v", got)
	}
	if got := testutil.ToFloat64(m.OperationsRejected.WithLabelValues("debit", "daily_limit")); got != 2 {
		t.Fatalf("expected 2 daily limit rejections, got %v", got)
	}
}

func TestMetricsRegisterTwiceOnSeparateRegistries(t *testing.T) {
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
