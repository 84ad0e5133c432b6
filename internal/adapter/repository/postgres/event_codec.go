package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iho/gowallet/internal/domain"
)

// createdPayload is the persisted form of domain.WalletCreated.
type createdPayload struct {
	WalletID string `json:"wallet_id"`
	OwnerID  string `json:"owner_id"`
	Currency string `json:"currency"`
}

// paymentPayload is the persisted form of a payment inside a credited or
// debited event. Fee is nil when no fee was attached.
type paymentPayload struct {
	PaymentID  string    `json:"payment_id"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
	Fee        *int64    `json:"fee,omitempty"`
}

func marshalEvent(event domain.WalletEvent) ([]byte, error) {
	switch e := event.(type) {
	case domain.WalletCreated:
		return json.Marshal(createdPayload{
			WalletID: e.WalletID.String(),
			OwnerID:  e.OwnerID.String(),
			Currency: e.Currency,
		})
	case domain.WalletCredited:
		return json.Marshal(paymentToPayload(e.Payment))
	case domain.WalletDebited:
		return json.Marshal(paymentToPayload(e.Payment))
	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrEventNotSupported, event)
	}
}

func unmarshalEvent(kind string, payload []byte) (domain.WalletEvent, error) {
	switch kind {
	case domain.EventKindWalletCreated:
		var p createdPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", kind, err)
		}

		walletID, err := domain.ParseWalletID(p.WalletID)
		if err != nil {
			return nil, err
		}

		ownerID, err := domain.ParseOwnerID(p.OwnerID)
		if err != nil {
			return nil, err
		}

		return domain.WalletCreated{
			WalletID: walletID,
			OwnerID:  ownerID,
			Currency: p.Currency,
		}, nil

	case domain.EventKindWalletCredited:
		payment, err := paymentFromPayload(payload, kind)
		if err != nil {
			return nil, err
		}

		return domain.WalletCredited{Payment: payment}, nil

	case domain.EventKindWalletDebited:
		payment, err := paymentFromPayload(payload, kind)
		if err != nil {
			return nil, err
		}

		return domain.WalletDebited{Payment: payment}, nil

	default:
		return nil, fmt.Errorf("%w: kind %q", domain.ErrEventNotSupported, kind)
	}
}

func paymentToPayload(payment domain.Payment) paymentPayload {
	p := paymentPayload{
		PaymentID:  payment.ID().String(),
		Amount:     payment.Amount().Amount(),
		Currency:   payment.Currency(),
		OccurredAt: payment.OccurredAt().UTC(),
	}

	if payment.HasFee() {
		fee := payment.Fee().Amount()
		p.Fee = &fee
	}

	return p
}

func paymentFromPayload(payload []byte, kind string) (domain.Payment, error) {
	var p paymentPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return domain.Payment{}, fmt.Errorf("decode %s payload: %w", kind, err)
	}

	paymentID, err := domain.ParsePaymentID(p.PaymentID)
	if err != nil {
		return domain.Payment{}, err
	}

	var fee *domain.Money
	if p.Fee != nil {
		m := domain.NewMoney(*p.Fee, p.Currency)
		fee = &m
	}

	return domain.ReconstructPayment(paymentID,
		domain.NewMoney(p.Amount, p.Currency), p.OccurredAt, fee), nil
}
