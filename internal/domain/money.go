package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount expressed in integer minor units
// (e.g. cents) of a single currency. The zero value is 0 units of the
// empty currency.
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a Money value of amount minor units in the given currency.
func NewMoney(amount int64, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// ZeroMoney creates a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{currency: currency}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// Equal reports whether two Money values have the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// Add sums two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// MultiplyPercentage returns rate*amount in the same currency, rounded half
// away from zero on the fractional minor unit. The result carries the sign
// of the amount for any non-negative rate.
func (m Money) MultiplyPercentage(rate float64) Money {
	product := decimal.NewFromInt(m.amount).Mul(decimal.NewFromFloat(rate))

	return Money{amount: product.Round(0).IntPart(), currency: m.currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// Valid currency codes (ISO 4217).
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"SEK": true, "NZD": true, "KRW": true, "SGD": true,
	"NOK": true, "MXN": true, "INR": true, "BRL": true,
	"ZAR": true, "RUB": true, "TRY": true, "HKD": true,
	"PLN": true, "UAH": true, "CZK": true, "DKK": true,
}

// ValidateCurrency validates a currency code.
func ValidateCurrency(currency string) error {
	if !validCurrencies[strings.ToUpper(strings.TrimSpace(currency))] {
		return fmt.Errorf("%w: %q is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}
