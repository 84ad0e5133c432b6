package domain

import (
	"errors"
	"testing"
)

func TestMoney_Add(t *testing.T) {
	tests := []struct {
		name        string
		a           Money
		b           Money
		want        int64
		expectError bool
	}{
		{
			name: "same currency",
			a:    NewMoney(100, "USD"),
			b:    NewMoney(250, "USD"),
			want: 350,
		},
		{
			name: "negative amounts",
			a:    NewMoney(100, "USD"),
			b:    NewMoney(-30, "USD"),
			want: 70,
		},
		{
			name:        "currency mismatch",
			a:           NewMoney(100, "USD"),
			b:           NewMoney(100, "EUR"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := tt.a.Add(tt.b)

			if tt.expectError {
				if !errors.Is(err, ErrCurrencyMismatch) {
					t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if sum.Amount() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, sum.Amount())
			}

			if sum.Currency() != tt.a.Currency() {
				t.Errorf("expected currency %s, got %s", tt.a.Currency(), sum.Currency())
			}
		})
	}
}

func TestMoney_MultiplyPercentage(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		rate   float64
		want   int64
	}{
		{name: "half percent of -1000", amount: -1000, rate: 0.005, want: -5},
		{name: "one percent of 10 rounds to zero", amount: 10, rate: 0.01, want: 0},
		{name: "half a minor unit rounds away from zero", amount: 100, rate: 0.005, want: 1},
		{name: "negative half rounds away from zero", amount: -100, rate: 0.005, want: -1},
		{name: "full rate", amount: 123, rate: 1, want: 123},
		{name: "zero rate", amount: 123, rate: 0, want: 0},
		{name: "exact fraction", amount: -150, rate: 0.005, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMoney(tt.amount, "USD").MultiplyPercentage(tt.rate)

			if got.Amount() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got.Amount())
			}

			if got.Currency() != "USD" {
				t.Errorf("expected currency USD, got %s", got.Currency())
			}
		})
	}
}

func TestMoney_Signs(t *testing.T) {
	if !NewMoney(1, "USD").IsPositive() {
		t.Error("expected positive")
	}

	if !NewMoney(-1, "USD").IsNegative() {
		t.Error("expected negative")
	}

	if !ZeroMoney("USD").IsZero() {
		t.Error("expected zero")
	}
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		currency    string
		expectError bool
	}{
		{currency: "USD"},
		{currency: "eur"},
		{currency: " GBP "},
		{currency: "XXX", expectError: true},
		{currency: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			err := ValidateCurrency(tt.currency)

			if tt.expectError && !errors.Is(err, ErrInvalidCurrency) {
				t.Fatalf("expected ErrInvalidCurrency, got %v", err)
			}

			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
