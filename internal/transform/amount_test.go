package transform

import (
	"testing"

	"finledger/internal/models"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name   string
		txType models.TransactionType
		amount string
		want   string
	}{
		{"withdrawal is positive", models.TypeWithdrawal, "-5.00", "5.00"},
		{"withdrawal already positive", models.TypeWithdrawal, "5.00", "5.00"},
		{"deposit is negative", models.TypeDeposit, "-5.00", "-5.00"},
		{"deposit from positive input", models.TypeDeposit, "5.00", "-5.00"},
		{"transfer is negative", models.TypeTransfer, "100.4567", "-100.4567"},
		{"opening balance is negative", models.TypeOpeningBalance, "250", "-250"},
		{"reconciliation is negative", models.TypeReconciliation, "0.01", "-0.01"},
		{"zero coerced positive", models.TypeWithdrawal, "-0.00", "0.00"},
		{"zero coerced negative", models.TypeDeposit, "0.00", "-0.00"},
		{"scale survives", models.TypeWithdrawal, "-5.000000000000", "5.000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAmount(tt.txType, tt.amount); got != tt.want {
				t.Errorf("NormalizeAmount(%q, %q) = %q, want %q", tt.txType, tt.amount, got, tt.want)
			}
		})
	}
}

func TestNormalizeForeignAmount(t *testing.T) {
	if got := NormalizeForeignAmount(models.TypeTransfer, nil); got != nil {
		t.Errorf("nil foreign amount = %q, want nil", *got)
	}

	foreign := "30.00"
	got := NormalizeForeignAmount(models.TypeTransfer, &foreign)
	if got == nil || *got != "-30.00" {
		t.Errorf("foreign amount for transfer = %v, want -30.00", got)
	}

	got = NormalizeForeignAmount(models.TypeWithdrawal, &foreign)
	if got == nil || *got != "30.00" {
		t.Errorf("foreign amount for withdrawal = %v, want 30.00", got)
	}
}
