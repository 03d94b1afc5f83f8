package orderservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/cache"
	"partstock/internal/pkg/logger"
	"partstock/internal/stockcalc"
)

// OrderRepository define o contrato que o Serviço de Pedidos espera da camada de Persistência.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, expectedVersion int) (domain.Order, error)
	ApplyDelivery(ctx context.Context, orderID string, deliveries []stockcalc.Delivery, createdBy string) (domain.DeliveryResult, error)
}

// Service implementa o ciclo de vida dos pedidos ao fornecedor.
type Service struct {
	repo   OrderRepository
	cache  *cache.CollectionCache
	logger logger.Logger
	now    func() time.Time
	number func(time.Time) string
}

// NewService cria e retorna uma nova instância do Serviço de Pedidos.
// newNumber gera o número legível do pedido.
func NewService(repo OrderRepository, collections *cache.CollectionCache, logger logger.Logger, newNumber func(time.Time) string) *Service {
	return &Service{
		repo:   repo,
		cache:  collections,
		logger: logger,
		now:    time.Now,
		number: newNumber,
	}
}

func (s *Service) goContext(ctx domain.Context, op string) context.Context {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		s.logger.Warn("Contexto de domínio inválido, usando context.Background().", map[string]interface{}{"op": op})
		return context.Background()
	}
	return ctxGo
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do pedido deve ser um UUID válido.")
	}
	return nil
}

// CreateOrder monta o pedido (itens, subtotais, total) e o persiste.
func (s *Service) CreateOrder(ctx domain.Context, req domain.OrderCreateRequest) (domain.Order, error) {
	ctxGo := s.goContext(ctx, "CreateOrder")

	// 1. Regras de negócio
	req.Supplier = strings.TrimSpace(req.Supplier)
	if req.Supplier == "" {
		return domain.Order{}, apperror.NewValidationError("O fornecedor é obrigatório.")
	}
	if len(req.Items) == 0 {
		return domain.Order{}, apperror.NewValidationError("O pedido precisa de ao menos um item.")
	}
	status := req.Status
	if status == "" {
		status = domain.OrderStatusWaitingForAnswer
	}
	if status != domain.OrderStatusWaitingForAnswer && status != domain.OrderStatusToOrder {
		return domain.Order{}, apperror.NewValidationError(fmt.Sprintf("Um pedido não pode ser criado em '%s'.", status))
	}

	// 2. Monta itens e total
	now := s.now().UTC()
	order := domain.Order{
		ID:          uuid.NewString(),
		OrderNumber: s.number(now),
		Supplier:    req.Supplier,
		Status:      status,
		TotalAmount: decimal.Zero,
		Notes:       req.Notes,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       make([]domain.OrderItem, 0, len(req.Items)),
	}

	for i, line := range req.Items {
		if err := uuid.Validate(line.StockID); err != nil {
			return domain.Order{}, apperror.NewValidationError(fmt.Sprintf("Item %d: stock_id inválido.", i+1))
		}
		if line.QuantityOrdered <= 0 {
			return domain.Order{}, apperror.NewValidationError(fmt.Sprintf("Item %d: a quantidade pedida deve ser positiva.", i+1))
		}
		if line.UnitPrice.IsNegative() {
			return domain.Order{}, apperror.NewValidationError(fmt.Sprintf("Item %d: o preço unitário não pode ser negativo.", i+1))
		}

		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.QuantityOrdered)))
		order.TotalAmount = order.TotalAmount.Add(subtotal)
		order.Items = append(order.Items, domain.OrderItem{
			ID:                uuid.NewString(),
			OrderID:           order.ID,
			StockID:           line.StockID,
			QuantityOrdered:   line.QuantityOrdered,
			QuantityBackorder: line.QuantityOrdered,
			UnitPrice:         line.UnitPrice,
			Subtotal:          subtotal,
			ItemStatus:        domain.ItemStatusPending,
		})
	}

	// 3. Persistência
	created, err := s.repo.CreateOrder(ctxGo, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionOrders)
	s.logger.Info("Pedido criado.", map[string]interface{}{"id": created.ID, "order_number": created.OrderNumber, "total": created.TotalAmount.String()})
	return created, nil
}

// GetOrderByID busca um pedido com seus itens.
func (s *Service) GetOrderByID(ctx domain.Context, id string) (domain.Order, error) {
	if err := validateID(id); err != nil {
		return domain.Order{}, err
	}
	return s.repo.GetOrderByID(s.goContext(ctx, "GetOrderByID"), id)
}

// ListOrders lista pedidos (cacheado por filtro).
func (s *Service) ListOrders(ctx domain.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ctxGo := s.goContext(ctx, "ListOrders")

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Status de pedido desconhecido: '%s'.", filter.Status))
	}

	variant := fmt.Sprintf("status=%s|supplier=%s|from=%d|to=%d",
		filter.Status, filter.Supplier, filter.From.Unix(), filter.To.Unix())
	return cache.Fetch(ctxGo, s.cache, cache.CollectionOrders, variant, func(ctx context.Context) ([]domain.Order, error) {
		return s.repo.ListOrders(ctx, filter)
	})
}

// UpdateStatus aplica uma transição manual (to_order, ordered, cancelled).
// delivered e partial_delivered só são alcançados por RecordDelivery.
func (s *Service) UpdateStatus(ctx domain.Context, id string, to domain.OrderStatus) (domain.Order, error) {
	ctxGo := s.goContext(ctx, "UpdateStatus")

	if err := validateID(id); err != nil {
		return domain.Order{}, err
	}
	if !to.IsValid() {
		return domain.Order{}, apperror.NewValidationError(fmt.Sprintf("Status de pedido desconhecido: '%s'.", to))
	}
	if to == domain.OrderStatusDelivered || to == domain.OrderStatusPartialDelivered {
		return domain.Order{}, apperror.NewValidationError("Status de entrega é definido pelo registro de entregas.")
	}

	current, err := s.repo.GetOrderByID(ctxGo, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !domain.CanTransition(current.Status, to) {
		s.logger.Warn("Transição de status inválida.", map[string]interface{}{"id": id, "from": current.Status, "to": to})
		return domain.Order{}, apperror.NewConflictError(fmt.Sprintf("Transição de '%s' para '%s' não permitida.", current.Status, to))
	}

	updated, err := s.repo.UpdateStatus(ctxGo, id, current.Status, to, current.Version)
	if err != nil {
		return domain.Order{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionOrders)
	s.logger.Info("Status do pedido alterado.", map[string]interface{}{"id": id, "from": current.Status, "to": updated.Status})
	return updated, nil
}

// RecordDelivery registra quantidades recebidas. O aumento de estoque correspondente
// é aplicado na mesma transação; nada é gravado se qualquer parte falhar.
func (s *Service) RecordDelivery(ctx domain.Context, orderID string, req domain.DeliveryRequest) (domain.DeliveryResult, error) {
	ctxGo := s.goContext(ctx, "RecordDelivery")

	if err := validateID(orderID); err != nil {
		return domain.DeliveryResult{}, err
	}
	if len(req.Deliveries) == 0 {
		return domain.DeliveryResult{}, apperror.NewValidationError("Informe ao menos uma linha de entrega.")
	}

	deliveries := make([]stockcalc.Delivery, 0, len(req.Deliveries))
	for _, line := range req.Deliveries {
		if line.Quantity < 0 {
			return domain.DeliveryResult{}, apperror.NewValidationError(fmt.Sprintf("Quantidade entregue negativa para o item %s.", line.ItemID))
		}
		deliveries = append(deliveries, stockcalc.Delivery{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	result, err := s.repo.ApplyDelivery(ctxGo, orderID, deliveries, req.CreatedBy)
	if err != nil {
		return domain.DeliveryResult{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionOrders, cache.CollectionStocks, cache.CollectionTransactions)

	received := 0
	for _, tx := range result.Transactions {
		received += tx.QuantityChange
	}
	s.logger.Info("Entrega registrada.", map[string]interface{}{
		"order_id":       orderID,
		"status":         result.Order.Status,
		"units_received": received,
	})
	return result, nil
}
