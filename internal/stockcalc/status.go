package stockcalc

import "partstock/internal/domain"

// Classify classifica a quantidade em relação ao estoque mínimo.
// Quantidade zero é sempre out_of_stock, independente do mínimo.
func Classify(quantity, minStockLevel int) domain.StockStatus {
	if quantity < 0 {
		quantity = 0
	}
	if minStockLevel < 0 {
		minStockLevel = 0
	}

	switch {
	case quantity == 0:
		return domain.StockStatusOutOfStock
	case quantity <= minStockLevel:
		return domain.StockStatusLowStock
	default:
		return domain.StockStatusInStock
	}
}
