package stockcalc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"partstock/internal/domain"
	"partstock/internal/stockcalc"
)

func TestMarginPercent(t *testing.T) {
	got := stockcalc.MarginPercent(decimal.RequireFromString("6.00"), decimal.RequireFromString("10.00"))
	assert.True(t, decimal.NewFromInt(40).Equal(got), got.String())

	got = stockcalc.MarginPercent(decimal.RequireFromString("2"), decimal.RequireFromString("3"))
	assert.Equal(t, "33.33", got.StringFixed(2))

	assert.True(t, stockcalc.MarginPercent(decimal.NewFromInt(5), decimal.Zero).IsZero())
}

func TestEnrich(t *testing.T) {
	stock := domain.PartColorStock{
		Quantity:      3,
		MinStockLevel: 5,
		PurchasePrice: decimal.NewFromInt(8),
		SellingPrice:  decimal.NewFromInt(10),
	}

	stockcalc.Enrich(&stock)

	assert.Equal(t, domain.StockStatusLowStock, stock.StockStatus)
	assert.Equal(t, "20.00", stock.MarginPercent.StringFixed(2))
}
