package transform

import "finledger/internal/models"

// CurrencyInfo is the four-field currency projection of a flattened record.
// All fields are nil together when no currency is attached; callers always
// get the full four-field shape.
type CurrencyInfo struct {
	ID            *int64
	Code          *string
	Symbol        *string
	DecimalPlaces *int
}

// ResolveCurrency projects an optional currency entity onto CurrencyInfo.
func ResolveCurrency(currency *models.TransactionCurrency) CurrencyInfo {
	if currency == nil {
		return CurrencyInfo{}
	}
	id := currency.ID
	code := currency.Code
	symbol := currency.Symbol
	places := currency.DecimalPlaces
	return CurrencyInfo{
		ID:            &id,
		Code:          &code,
		Symbol:        &symbol,
		DecimalPlaces: &places,
	}
}
