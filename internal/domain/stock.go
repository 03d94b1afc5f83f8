package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classifica a quantidade em relação ao estoque mínimo.
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusInStock    StockStatus = "in_stock"
)

// IsValid indica se o status é um dos valores conhecidos.
func (s StockStatus) IsValid() bool {
	switch s {
	case StockStatusOutOfStock, StockStatusLowStock, StockStatusInStock:
		return true
	}
	return false
}

// PartColorStock representa o nível de estoque de uma peça em uma cor específica.
// Inclui uma coluna 'version' para controle de concorrência otimista.
type PartColorStock struct {
	ID            string          `json:"id"`
	PartID        string          `json:"part_id"`
	ColorID       string          `json:"color_id"`
	Quantity      int             `json:"quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Version       int             `json:"version"` // Para Controle de Concorrência Otimista (OCC)
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Campos derivados, recalculados a cada leitura (não persistidos).
	StockStatus   StockStatus     `json:"stock_status"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// AdjustmentMode define como o valor informado é aplicado à quantidade atual.
type AdjustmentMode string

const (
	AdjustmentModeSet    AdjustmentMode = "set"
	AdjustmentModeAdd    AdjustmentMode = "add"
	AdjustmentModeRemove AdjustmentMode = "remove"
)

// IsValid indica se o modo é um dos valores conhecidos.
func (m AdjustmentMode) IsValid() bool {
	switch m {
	case AdjustmentModeSet, AdjustmentModeAdd, AdjustmentModeRemove:
		return true
	}
	return false
}

// StockCreateRequest é o payload para cadastrar uma combinação Peça x Cor.
type StockCreateRequest struct {
	PartID        string          `json:"part_id" validate:"required,uuid"`
	ColorID       string          `json:"color_id" validate:"required,uuid"`
	Quantity      int             `json:"quantity" validate:"gte=0"`
	MinStockLevel int             `json:"min_stock_level" validate:"gte=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
}

// StockUpdateRequest altera os atributos que não são quantidade (a quantidade só muda via ajuste).
type StockUpdateRequest struct {
	MinStockLevel int             `json:"min_stock_level" validate:"gte=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Version       int             `json:"version" validate:"gte=1"`
}

// StockAdjustmentRequest é o payload esperado para a requisição de ajuste de estoque.
type StockAdjustmentRequest struct {
	StockID   string          `json:"-"`
	Mode      AdjustmentMode  `json:"mode" validate:"required,oneof=set add remove"`
	Amount    int             `json:"amount" validate:"gte=0"`
	Type      TransactionType `json:"type" validate:"required,oneof=purchase sale adjustment production damage return"`
	Reference string          `json:"reference" validate:"max=100"`
	Note      string          `json:"note" validate:"max=500"`
	CreatedBy string          `json:"-"`
}

// StockAdjustmentResult devolve o estoque atualizado e o lançamento gerado no razão.
type StockAdjustmentResult struct {
	Stock       PartColorStock       `json:"stock"`
	Transaction InventoryTransaction `json:"transaction"`
}

// StockFilter filtra a listagem de estoques.
type StockFilter struct {
	PartID  string
	ColorID string
	Status  StockStatus
}
