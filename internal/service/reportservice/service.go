package reportservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/logger"
	"partstock/internal/stockcalc"
)

// Campos agregáveis de cada relatório. O primeiro de cada lista é o padrão.
var (
	transactionFields = []string{"quantity_change", "units_in", "units_out"}
	orderFields       = []string{"total_amount", "quantity_ordered", "quantity_delivered"}
)

// TransactionSource lê o razão de estoque.
type TransactionSource interface {
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.InventoryTransaction, error)
}

// StockSource lê os níveis de estoque.
type StockSource interface {
	ListStocks(ctx context.Context, filter domain.StockFilter) ([]domain.PartColorStock, error)
}

// OrderSource lê pedidos e estatísticas de pedidos em aberto.
type OrderSource interface {
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	OpenOrderStats(ctx context.Context) (openOrders int, backorderUnits int, err error)
}

// Service gera relatórios por período e o resumo do painel.
type Service struct {
	transactions TransactionSource
	stocks       StockSource
	orders       OrderSource
	logger       logger.Logger
}

// NewService cria o serviço de relatórios.
func NewService(transactions TransactionSource, stocks StockSource, orders OrderSource, logger logger.Logger) *Service {
	return &Service{transactions: transactions, stocks: stocks, orders: orders, logger: logger}
}

func resolveField(requested string, allowed []string) (string, error) {
	if requested == "" {
		return allowed[0], nil
	}
	for _, f := range allowed {
		if f == requested {
			return f, nil
		}
	}
	return "", apperror.NewValidationError(fmt.Sprintf("Campo '%s' não pode ser agregado. Use um de %v.", requested, allowed))
}

func validateQuery(q domain.ReportQuery) error {
	if !q.Granularity.IsValid() {
		return apperror.NewValidationError(fmt.Sprintf("Granularidade desconhecida: '%s'. Use week, month ou year.", q.Granularity))
	}
	if !q.From.IsZero() && !q.To.IsZero() && !q.From.Before(q.To) {
		return apperror.NewValidationError("O início do período deve ser anterior ao fim.")
	}
	return nil
}

// TransactionsReport agrupa as movimentações do razão por período.
func (s *Service) TransactionsReport(ctx context.Context, q domain.ReportQuery) (domain.Report, error) {
	if err := validateQuery(q); err != nil {
		return domain.Report{}, err
	}
	if q.Type != "" && !q.Type.IsValid() {
		return domain.Report{}, apperror.NewValidationError(fmt.Sprintf("Tipo de movimentação desconhecido: '%s'.", q.Type))
	}
	field, err := resolveField(q.Field, transactionFields)
	if err != nil {
		return domain.Report{}, err
	}

	transactions, err := s.transactions.ListTransactions(ctx, domain.TransactionFilter{Type: q.Type, From: q.From, To: q.To})
	if err != nil {
		return domain.Report{}, err
	}

	records := make([]stockcalc.Record, 0, len(transactions))
	for _, t := range transactions {
		var value int
		switch field {
		case "quantity_change":
			value = t.QuantityChange
		case "units_in":
			value = max(t.QuantityChange, 0)
		case "units_out":
			value = max(-t.QuantityChange, 0)
		}
		records = append(records, stockcalc.Record{Date: t.CreatedAt, Value: decimal.NewFromInt(int64(value))})
	}

	s.logger.Debug("Relatório de movimentações gerado.", map[string]interface{}{"records": len(records), "granularity": q.Granularity, "field": field})
	return domain.Report{
		Granularity: q.Granularity,
		Field:       field,
		Groups:      stockcalc.Group(records, q.Granularity),
	}, nil
}

// OrdersReport agrupa os pedidos pela data de criação.
func (s *Service) OrdersReport(ctx context.Context, q domain.ReportQuery) (domain.Report, error) {
	if err := validateQuery(q); err != nil {
		return domain.Report{}, err
	}
	if q.Status != "" && !q.Status.IsValid() {
		return domain.Report{}, apperror.NewValidationError(fmt.Sprintf("Status de pedido desconhecido: '%s'.", q.Status))
	}
	field, err := resolveField(q.Field, orderFields)
	if err != nil {
		return domain.Report{}, err
	}

	orders, err := s.orders.ListOrders(ctx, domain.OrderFilter{Status: q.Status, From: q.From, To: q.To})
	if err != nil {
		return domain.Report{}, err
	}

	records := make([]stockcalc.Record, 0, len(orders))
	for _, o := range orders {
		value := decimal.Zero
		switch field {
		case "total_amount":
			value = o.TotalAmount
		case "quantity_ordered", "quantity_delivered":
			units := 0
			for _, item := range o.Items {
				if field == "quantity_ordered" {
					units += item.QuantityOrdered
				} else {
					units += item.QuantityDelivered
				}
			}
			value = decimal.NewFromInt(int64(units))
		}
		records = append(records, stockcalc.Record{Date: o.CreatedAt, Value: value})
	}

	return domain.Report{
		Granularity: q.Granularity,
		Field:       field,
		Groups:      stockcalc.Group(records, q.Granularity),
	}, nil
}

// Dashboard resume estoque e pedidos; as duas consultas rodam em paralelo.
func (s *Service) Dashboard(ctx context.Context) (domain.DashboardSummary, error) {
	summary := domain.DashboardSummary{
		ByStatus: map[domain.StockStatus]int{
			domain.StockStatusOutOfStock: 0,
			domain.StockStatusLowStock:   0,
			domain.StockStatusInStock:    0,
		},
		InventoryValue: decimal.Zero,
	}

	g, gctx := errgroup.WithContext(ctx)

	var stocks []domain.PartColorStock
	g.Go(func() error {
		var err error
		stocks, err = s.stocks.ListStocks(gctx, domain.StockFilter{})
		return err
	})

	var openOrders, backorderUnits int
	g.Go(func() error {
		var err error
		openOrders, backorderUnits, err = s.orders.OpenOrderStats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Falha ao montar o painel.", err)
		return domain.DashboardSummary{}, err
	}

	for _, stock := range stocks {
		summary.ByStatus[stockcalc.Classify(stock.Quantity, stock.MinStockLevel)]++
		summary.InventoryValue = summary.InventoryValue.Add(stock.PurchasePrice.Mul(decimal.NewFromInt(int64(stock.Quantity))))
	}
	summary.TotalStocks = len(stocks)
	summary.OpenOrders = openOrders
	summary.BackorderUnits = backorderUnits

	return summary, nil
}
