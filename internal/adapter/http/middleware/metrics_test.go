package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/api/v1/wallets", "/api/v1/wallets"},
		{"/api/v1/wallets/", "/api/v1/wallets/"},
		{"/api/v1/wallets/8f14e45f-ceea-4672-9d5a-54d9a1f2a3b4", "/api/v1/wallets/:id"},
		{"/api/v1/wallets/8f14e45f-ceea-4672-9d5a-54d9a1f2a3b4/credit", "/api/v1/wallets/:id/credit"},
		{"/api/v1/wallets/8f14e45f-ceea-4672-9d5a-54d9a1f2a3b4/debit", "/api/v1/wallets/:id/debit"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
