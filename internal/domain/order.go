package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus representa o ciclo de vida de um pedido ao fornecedor.
type OrderStatus string

const (
	OrderStatusWaitingForAnswer OrderStatus = "waiting_for_answer"
	OrderStatusToOrder          OrderStatus = "to_order"
	OrderStatusOrdered          OrderStatus = "ordered"
	OrderStatusDelivered        OrderStatus = "delivered"
	OrderStatusPartialDelivered OrderStatus = "partial_delivered"
	OrderStatusCancelled        OrderStatus = "cancelled"
)

// IsValid indica se o status é um dos valores conhecidos.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusWaitingForAnswer, OrderStatusToOrder, OrderStatusOrdered,
		OrderStatusDelivered, OrderStatusPartialDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal indica que o pedido não aceita mais transições.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// AcceptsDeliveries indica se entregas podem ser registradas neste status.
func (s OrderStatus) AcceptsDeliveries() bool {
	return s == OrderStatusOrdered || s == OrderStatusPartialDelivered
}

// manualTransitions lista as transições que podem ser solicitadas diretamente pela API.
// delivered e partial_delivered só são alcançados via registro de entrega.
var manualTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusWaitingForAnswer: {OrderStatusToOrder, OrderStatusOrdered, OrderStatusCancelled},
	OrderStatusToOrder:          {OrderStatusOrdered, OrderStatusCancelled},
	OrderStatusOrdered:          {OrderStatusCancelled},
	OrderStatusPartialDelivered: {OrderStatusCancelled},
}

// CanTransition informa se a transição manual from -> to é permitida.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range manualTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ItemStatus representa o estado de entrega de um item do pedido.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusPartial   ItemStatus = "partial"
	ItemStatusDelivered ItemStatus = "delivered"
	ItemStatusBackorder ItemStatus = "backorder"
	ItemStatusCancelled ItemStatus = "cancelled"
)

// Order agrega os itens de um pedido de compra.
type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	Supplier    string          `json:"supplier"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem é uma linha do pedido, ligada a uma combinação Peça x Cor.
// Invariante: QuantityDelivered <= QuantityOrdered.
type OrderItem struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	StockID           string          `json:"stock_id"`
	QuantityOrdered   int             `json:"quantity_ordered"`
	QuantityDelivered int             `json:"quantity_delivered"`
	QuantityBackorder int             `json:"quantity_backorder"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	ItemStatus        ItemStatus      `json:"item_status"`
}

// OrderCreateRequest é o payload de criação de pedido.
type OrderCreateRequest struct {
	Supplier string                   `json:"supplier" validate:"required,max=150"`
	Status   OrderStatus              `json:"status" validate:"omitempty,oneof=waiting_for_answer to_order"`
	Notes    string                   `json:"notes" validate:"max=1000"`
	Items    []OrderItemCreateRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemCreateRequest descreve uma linha do pedido a ser criado.
type OrderItemCreateRequest struct {
	StockID         string          `json:"stock_id" validate:"required,uuid"`
	QuantityOrdered int             `json:"quantity_ordered" validate:"gt=0"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// OrderStatusRequest solicita uma transição manual de status.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=to_order ordered cancelled"`
}

// DeliveryRequest registra quantidades recebidas para itens de um pedido.
type DeliveryRequest struct {
	Deliveries []DeliveryLine `json:"deliveries" validate:"required,min=1,dive"`
	CreatedBy  string         `json:"-"`
}

// DeliveryLine é a quantidade entregue agora para um item.
type DeliveryLine struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// DeliveryResult devolve o pedido atualizado e os lançamentos de estoque gerados.
type DeliveryResult struct {
	Order        Order                  `json:"order"`
	Transactions []InventoryTransaction `json:"transactions"`
}

// OrderFilter filtra a listagem de pedidos.
type OrderFilter struct {
	Status   OrderStatus
	Supplier string
	From     time.Time
	To       time.Time
}
