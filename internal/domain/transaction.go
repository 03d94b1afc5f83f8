package domain

import "time"

// TransactionType enumera os tipos de movimentação registrados no razão de estoque.
type TransactionType string

const (
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeProduction TransactionType = "production"
	TransactionTypeDamage     TransactionType = "damage"
	TransactionTypeReturn     TransactionType = "return"
)

// IsValid indica se o tipo é um dos valores conhecidos.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypePurchase, TransactionTypeSale, TransactionTypeAdjustment,
		TransactionTypeProduction, TransactionTypeDamage, TransactionTypeReturn:
		return true
	}
	return false
}

// AllowsMode indica se o modo de ajuste combina com o sentido da movimentação.
// Entradas (purchase, production, return) só somam, saídas (sale, damage) só
// retiram e apenas adjustment aceita qualquer modo, inclusive set.
func (t TransactionType) AllowsMode(mode AdjustmentMode) bool {
	switch t {
	case TransactionTypePurchase, TransactionTypeProduction, TransactionTypeReturn:
		return mode == AdjustmentModeAdd
	case TransactionTypeSale, TransactionTypeDamage:
		return mode == AdjustmentModeRemove
	case TransactionTypeAdjustment:
		return mode.IsValid()
	}
	return false
}

// InventoryTransaction é um lançamento imutável do razão de estoque.
// Invariante: QuantityAfter == QuantityBefore + QuantityChange.
type InventoryTransaction struct {
	ID             string          `json:"id"`
	StockID        string          `json:"stock_id"`
	Type           TransactionType `json:"type"`
	QuantityChange int             `json:"quantity_change"`
	QuantityBefore int             `json:"quantity_before"`
	QuantityAfter  int             `json:"quantity_after"`
	Reference      string          `json:"reference,omitempty"` // Ex: número do pedido
	Note           string          `json:"note,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TransactionFilter filtra lançamentos do razão.
type TransactionFilter struct {
	StockID string
	Type    TransactionType
	From    time.Time
	To      time.Time
}

// LedgerVerification é o resultado da reconstrução do estoque a partir do razão.
type LedgerVerification struct {
	StockID          string `json:"stock_id"`
	Transactions     int    `json:"transactions"`
	ReplayedQuantity int    `json:"replayed_quantity"`
	LiveQuantity     int    `json:"live_quantity"`
	Consistent       bool   `json:"consistent"`
}
