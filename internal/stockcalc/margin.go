package stockcalc

import (
	"github.com/shopspring/decimal"

	"partstock/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// MarginPercent calcula a margem sobre o preço de venda, em %, com 2 casas.
// Preço de venda zero resulta em margem zero.
func MarginPercent(purchasePrice, sellingPrice decimal.Decimal) decimal.Decimal {
	if sellingPrice.IsZero() {
		return decimal.Zero
	}
	return sellingPrice.Sub(purchasePrice).Div(sellingPrice).Mul(hundred).Round(2)
}

// Enrich preenche os campos derivados do estoque.
func Enrich(stock *domain.PartColorStock) {
	stock.StockStatus = Classify(stock.Quantity, stock.MinStockLevel)
	stock.MarginPercent = MarginPercent(stock.PurchasePrice, stock.SellingPrice)
}
