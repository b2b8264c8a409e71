package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptsplit/internal/models"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// exchangeRates resolves the conversion rate of every receipt into the
// settlement currency.
//
// A receipt in the settlement currency (or with no currency) converts at 1.
// A receipt in another currency uses its exchange rate; when that rate is
// missing or not positive it also converts at 1 and a warning is reported.
func exchangeRates(receipts []models.Receipt, settlementCurrency string) (map[string]decimal.Decimal, []models.CurrencyWarning) {
	rates := make(map[string]decimal.Decimal, len(receipts))
	warnings := []models.CurrencyWarning{}
	for _, r := range receipts {
		if r.Currency == "" || strings.EqualFold(r.Currency, settlementCurrency) {
			rates[r.ID] = one
			continue
		}
		if r.ExchangeRate.Valid && r.ExchangeRate.Decimal.IsPositive() {
			rates[r.ID] = r.ExchangeRate.Decimal
			continue
		}
		rates[r.ID] = one
		warnings = append(warnings, models.CurrencyWarning{ReceiptID: r.ID, Currency: r.Currency})
	}
	return rates, warnings
}

// convert multiplies an amount by rate and rounds to the nearest minor unit.
func convert(amount int64, rate decimal.Decimal) int64 {
	if rate.Equal(one) {
		return amount
	}
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}

// grossShare scales a net share of an item's effective cost back up to the
// item's pre-discount cost, rounded to the nearest minor unit.
func grossShare(net, cost, effectiveCost int64) int64 {
	if cost == effectiveCost {
		return net
	}
	return decimal.NewFromInt(net).
		Mul(decimal.NewFromInt(cost)).
		Div(decimal.NewFromInt(effectiveCost)).
		Round(0).
		IntPart()
}

// percentOf returns round(base * percent / 100).
func percentOf(base int64, percent decimal.Decimal) int64 {
	return decimal.NewFromInt(base).Mul(percent).Div(hundred).Round(0).IntPart()
}
