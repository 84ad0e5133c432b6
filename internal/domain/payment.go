package domain

import (
	"time"
)

// Payment is a single monetary movement. The sign of the amount fixes the
// direction at construction: positive is a credit, negative is a debit.
// A Payment is immutable; attaching a fee returns a new value.
type Payment struct {
	id         PaymentID
	amount     Money
	occurredAt time.Time
	fee        Money
	feeSet     bool
}

// NewPayment creates a payment of the given amount occurring at the given
// time. A zero amount fails validation.
func NewPayment(id PaymentID, amount Money, occurredAt time.Time) (Payment, error) {
	if amount.IsZero() {
		return Payment{}, ErrZeroAmount
	}

	return Payment{
		id:         id,
		amount:     amount,
		occurredAt: occurredAt.UTC(),
	}, nil
}

// ReconstructPayment rebuilds a payment from persisted state. The stored
// values are trusted; no validation runs.
func ReconstructPayment(id PaymentID, amount Money, occurredAt time.Time, fee *Money) Payment {
	p := Payment{
		id:         id,
		amount:     amount,
		occurredAt: occurredAt.UTC(),
	}

	if fee != nil {
		p.fee = *fee
		p.feeSet = true
	}

	return p
}

// ID returns the payment identifier.
func (p Payment) ID() PaymentID {
	return p.id
}

// Amount returns the signed payment amount.
func (p Payment) Amount() Money {
	return p.amount
}

// Currency returns the currency of the payment amount.
func (p Payment) Currency() string {
	return p.amount.Currency()
}

// OccurredAt returns the payment timestamp in UTC.
func (p Payment) OccurredAt() time.Time {
	return p.occurredAt
}

// IsCredit reports whether the payment increases a balance.
func (p Payment) IsCredit() bool {
	return p.amount.IsPositive()
}

// IsDebit reports whether the payment decreases a balance.
func (p Payment) IsDebit() bool {
	return p.amount.IsNegative()
}

// HasFee reports whether a transaction fee has been attached.
func (p Payment) HasFee() bool {
	return p.feeSet
}

// Fee returns the attached transaction fee, or zero Money in the payment
// currency when no fee has been attached.
func (p Payment) Fee() Money {
	if !p.feeSet {
		return ZeroMoney(p.amount.Currency())
	}

	return p.fee
}

// AddPercentageTransactionFee returns a copy of the payment with a
// proportional fee attached. The fee carries the sign of the amount and is
// rounded half away from zero on the fractional minor unit. Attaching a fee
// again replaces the previous one.
func (p Payment) AddPercentageTransactionFee(rate float64) (Payment, error) {
	if rate < 0 || rate > 1 {
		return Payment{}, ErrInvalidFeeRate
	}

	p.fee = p.amount.MultiplyPercentage(rate)
	p.feeSet = true

	return p, nil
}

// TotalAmount is the payment amount plus its fee.
func (p Payment) TotalAmount() Money {
	// The fee always shares the payment currency.
	total, _ := p.amount.Add(p.Fee())

	return total
}

// OccurredOn reports whether the payment falls on the same UTC calendar day
// as t. Daily business rules compare dates in UTC.
func (p Payment) OccurredOn(t time.Time) bool {
	py, pm, pd := p.occurredAt.Date()
	ty, tm, td := t.UTC().Date()

	return py == ty && pm == tm && pd == td
}
