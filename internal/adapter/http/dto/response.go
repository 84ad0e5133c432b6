package dto

import (
	"github.com/iho/gowallet/internal/usecase"
)

// WalletResponse represents a wallet in API responses. Balance is in minor
// units of the wallet currency.
type WalletResponse struct {
	WalletID string `json:"wallet_id"`
	OwnerID  string `json:"owner_id"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// WalletFromView converts a wallet view to a response.
func WalletFromView(view *usecase.WalletView) *WalletResponse {
	return &WalletResponse{
		WalletID: view.WalletID,
		OwnerID:  view.OwnerID,
		Balance:  view.Balance,
		Currency: view.Currency,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
