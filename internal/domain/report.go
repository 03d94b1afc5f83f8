package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity define o período de agrupamento dos relatórios.
type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// IsValid indica se a granularidade é suportada.
func (g Granularity) IsValid() bool {
	return g == GranularityWeek || g == GranularityMonth || g == GranularityYear
}

// PeriodGroup é um grupo de registros de um mesmo período (ex: "2025-W01").
type PeriodGroup struct {
	Key   string          `json:"key"`
	Count int             `json:"count"`
	Sum   decimal.Decimal `json:"sum"`
}

// Report é a resposta dos endpoints de relatório.
type Report struct {
	Granularity Granularity   `json:"granularity"`
	Field       string        `json:"field"`
	Groups      []PeriodGroup `json:"groups"`
}

// DashboardSummary resume a situação do estoque e dos pedidos.
type DashboardSummary struct {
	TotalStocks    int                 `json:"total_stocks"`
	ByStatus       map[StockStatus]int `json:"by_status"`
	OpenOrders     int                 `json:"open_orders"`
	BackorderUnits int                 `json:"backorder_units"`
	InventoryValue decimal.Decimal     `json:"inventory_value"` // Σ quantidade x preço de compra
}

// ReportQuery parametriza os relatórios por período.
type ReportQuery struct {
	Granularity Granularity
	Field       string
	From        time.Time
	To          time.Time
	Type        TransactionType // relatório de movimentações
	Status      OrderStatus     // relatório de pedidos
}
