package dto

import (
	"github.com/iho/gowallet/internal/usecase"
)

// CreateWalletRequest represents a request to create a wallet.
type CreateWalletRequest struct {
	OwnerID  string `json:"owner_id"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateWalletRequest) ToUseCaseInput() usecase.CreateWalletInput {
	return usecase.CreateWalletInput{
		OwnerID:  r.OwnerID,
		Currency: r.Currency,
	}
}

// CreditWalletRequest represents a request to credit a wallet. Amount is in
// minor units and must be positive.
type CreditWalletRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *CreditWalletRequest) ToUseCaseInput(walletID string) usecase.CreditWalletInput {
	return usecase.CreditWalletInput{
		WalletID: walletID,
		Amount:   r.Amount,
		Currency: r.Currency,
	}
}

// DebitWalletRequest represents a request to debit a wallet. Amount is in
// minor units and must be negative; the sign carries the direction.
type DebitWalletRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *DebitWalletRequest) ToUseCaseInput(walletID string) usecase.DebitWalletInput {
	return usecase.DebitWalletInput{
		WalletID: walletID,
		Amount:   r.Amount,
		Currency: r.Currency,
	}
}
