package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// WalletID uniquely identifies a wallet.
type WalletID struct {
	id uuid.UUID
}

// NewWalletID generates a random WalletID.
func NewWalletID() WalletID {
	return WalletID{id: uuid.New()}
}

// ParseWalletID parses a WalletID from its canonical textual form.
func ParseWalletID(s string) (WalletID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return WalletID{}, fmt.Errorf("%w: %q is not a valid wallet id", ErrInvalidID, s)
	}

	return WalletID{id: id}, nil
}

func (w WalletID) String() string {
	return w.id.String()
}

// IsZero reports whether the id is unset.
func (w WalletID) IsZero() bool {
	return w.id == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler.
func (w WalletID) MarshalText() ([]byte, error) {
	return []byte(w.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WalletID) UnmarshalText(text []byte) error {
	parsed, err := ParseWalletID(string(text))
	if err != nil {
		return err
	}

	*w = parsed

	return nil
}

// OwnerID identifies the owner of a wallet.
type OwnerID struct {
	id uuid.UUID
}

// NewOwnerID generates a random OwnerID.
func NewOwnerID() OwnerID {
	return OwnerID{id: uuid.New()}
}

// ParseOwnerID parses an OwnerID from its canonical textual form.
func ParseOwnerID(s string) (OwnerID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OwnerID{}, fmt.Errorf("%w: %q is not a valid owner id", ErrInvalidID, s)
	}

	return OwnerID{id: id}, nil
}

func (o OwnerID) String() string {
	return o.id.String()
}

// IsZero reports whether the id is unset.
func (o OwnerID) IsZero() bool {
	return o.id == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler.
func (o OwnerID) MarshalText() ([]byte, error) {
	return []byte(o.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OwnerID) UnmarshalText(text []byte) error {
	parsed, err := ParseOwnerID(string(text))
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}

// PaymentID identifies a single payment.
type PaymentID struct {
	id uuid.UUID
}

// NewPaymentID generates a random PaymentID.
func NewPaymentID() PaymentID {
	return PaymentID{id: uuid.New()}
}

// ParsePaymentID parses a PaymentID from its canonical textual form.
func ParsePaymentID(s string) (PaymentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PaymentID{}, fmt.Errorf("%w: %q is not a valid payment id", ErrInvalidID, s)
	}

	return PaymentID{id: id}, nil
}

func (p PaymentID) String() string {
	return p.id.String()
}

// IsZero reports whether the id is unset.
func (p PaymentID) IsZero() bool {
	return p.id == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PaymentID) MarshalText() ([]byte, error) {
	return []byte(p.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PaymentID) UnmarshalText(text []byte) error {
	parsed, err := ParsePaymentID(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
