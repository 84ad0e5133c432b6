package postgres

import (
	"github.com/iho/gowallet/internal/domain"
)

// UUIDGenerator implements usecase.IDGenerator with random UUIDs. Event
// record ids use ULIDs instead so rows sort by creation time; see
// EventStore.Append.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewWalletID generates a new wallet id.
func (g *UUIDGenerator) NewWalletID() domain.WalletID {
	return domain.NewWalletID()
}

// NewPaymentID generates a new payment id.
func (g *UUIDGenerator) NewPaymentID() domain.PaymentID {
	return domain.NewPaymentID()
}
