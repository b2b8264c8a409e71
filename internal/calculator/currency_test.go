package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/receiptsplit/internal/models"
)

func TestExchangeRates(t *testing.T) {
	rate := func(s string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(s))
	}
	receipts := []models.Receipt{
		{ID: "same", Currency: "USD", ExchangeRate: rate("3")},
		{ID: "blank"},
		{ID: "eur", Currency: "EUR", ExchangeRate: rate("1.08")},
		{ID: "jpy", Currency: "JPY"},
		{ID: "zero", Currency: "GBP", ExchangeRate: rate("0")},
	}

	rates, warnings := exchangeRates(receipts, "USD")

	assert.True(t, rates["same"].Equal(one))
	assert.True(t, rates["blank"].Equal(one))
	assert.True(t, rates["eur"].Equal(decimal.RequireFromString("1.08")))
	assert.True(t, rates["jpy"].Equal(one))
	assert.True(t, rates["zero"].Equal(one))
	assert.Equal(t, []models.CurrencyWarning{
		{ReceiptID: "jpy", Currency: "JPY"},
		{ReceiptID: "zero", Currency: "GBP"},
	}, warnings)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		amount int64
		rate   string
		want   int64
	}{
		{1000, "1", 1000},
		{1000, "1.1", 1100},
		{333, "1.005", 335},
		{125, "0.5", 63}, // half away from zero
		{-125, "0.5", -63},
		{12345, "0.0067", 83},
	}
	for _, tt := range tests {
		got := convert(tt.amount, decimal.RequireFromString(tt.rate))
		assert.Equal(t, tt.want, got, "convert(%d, %s)", tt.amount, tt.rate)
	}
}

func TestGrossShare(t *testing.T) {
	assert.Equal(t, int64(1000), grossShare(750, 2000, 1500))
	assert.Equal(t, int64(500), grossShare(500, 1000, 1000))
	// 333 * 1000 / 999 = 333.33...
	assert.Equal(t, int64(333), grossShare(333, 1000, 999))
	assert.Equal(t, int64(667), grossShare(666, 1000, 999))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, int64(300), percentOf(3000, decimal.NewFromInt(10)))
	assert.Equal(t, int64(125), percentOf(1000, decimal.RequireFromString("12.5")))
	assert.Equal(t, int64(12), percentOf(99, decimal.RequireFromString("12.5")))
	assert.Equal(t, int64(13), percentOf(100, decimal.RequireFromString("12.5")))
	assert.Equal(t, int64(0), percentOf(0, decimal.NewFromInt(15)))
}
