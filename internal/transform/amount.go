package transform

import (
	"strings"

	"finledger/internal/models"
)

// Amounts are coerced by editing the stored decimal string instead of
// re-rendering through a numeric type, so the stored scale survives:
// "5.00" must stay "5.00", not become "5".

// PositiveAmount strips the leading minus sign, if any.
func PositiveAmount(amount string) string {
	return strings.TrimPrefix(strings.TrimSpace(amount), "-")
}

// NegativeAmount forces a leading minus sign.
func NegativeAmount(amount string) string {
	return "-" + PositiveAmount(amount)
}

// NormalizeAmount applies the direction-encoded sign convention: withdrawals
// carry a positive amount, every other type a negative one. A zero amount is
// coerced the same way; its sign is whatever the target direction dictates.
func NormalizeAmount(txType models.TransactionType, amount string) string {
	if txType == models.TypeWithdrawal {
		return PositiveAmount(amount)
	}
	return NegativeAmount(amount)
}

// NormalizeForeignAmount is NormalizeAmount for the optional foreign figure.
// An absent foreign amount stays nil, it does not become zero.
func NormalizeForeignAmount(txType models.TransactionType, amount *string) *string {
	if amount == nil {
		return nil
	}
	normalized := NormalizeAmount(txType, *amount)
	return &normalized
}
