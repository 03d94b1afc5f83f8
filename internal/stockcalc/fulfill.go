package stockcalc

import (
	"fmt"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
)

// FulfillmentItem é o estado atual de um item antes da entrega.
type FulfillmentItem struct {
	ItemID          string
	StockID         string
	QuantityOrdered int
	PriorDelivered  int
	Status          domain.ItemStatus
}

// Delivery é a quantidade recebida agora para um item.
type Delivery struct {
	ItemID   string
	Quantity int
}

// ItemOutcome é o estado do item depois da entrega.
type ItemOutcome struct {
	ItemID            string
	StockID           string
	QuantityOrdered   int
	QuantityDelivered int
	QuantityBackorder int
	Status            domain.ItemStatus
}

// StockIncrease sinaliza quantas unidades devem entrar no estoque do item.
// Nunca é aplicado aqui: quem chama executa o ajuste "add" correspondente.
type StockIncrease struct {
	ItemID   string
	StockID  string
	Quantity int
}

// FulfillmentResult agrupa os itens recalculados, o status derivado do pedido
// e os aumentos de estoque que precisam acompanhar a entrega.
type FulfillmentResult struct {
	Items       []ItemOutcome
	OrderStatus domain.OrderStatus // vazio quando nada foi entregue
	Increases   []StockIncrease
}

// ValidateDeliveries rejeita itens desconhecidos, repetidos ou quantidades negativas.
func ValidateDeliveries(items []FulfillmentItem, deliveries []Delivery) error {
	known := make(map[string]domain.ItemStatus, len(items))
	for _, it := range items {
		known[it.ItemID] = it.Status
	}

	seen := make(map[string]bool, len(deliveries))
	for _, d := range deliveries {
		status, ok := known[d.ItemID]
		if !ok {
			return apperror.NewValidationError(fmt.Sprintf("Item %s não pertence ao pedido.", d.ItemID))
		}
		if status == domain.ItemStatusCancelled {
			return apperror.NewValidationError(fmt.Sprintf("Item %s está cancelado.", d.ItemID))
		}
		if seen[d.ItemID] {
			return apperror.NewValidationError(fmt.Sprintf("Item %s informado mais de uma vez.", d.ItemID))
		}
		if d.Quantity < 0 {
			return apperror.NewValidationError(fmt.Sprintf("Quantidade entregue negativa para o item %s.", d.ItemID))
		}
		seen[d.ItemID] = true
	}
	return nil
}

// Fulfill aplica as entregas aos itens.
//
// A quantidade entregue acumulada nunca passa da pedida; o excedente é ignorado.
// Itens sem nada entregue ficam em backorder quando o pedido passa a
// delivered/partial_delivered, e pending caso contrário.
func Fulfill(items []FulfillmentItem, deliveries []Delivery) FulfillmentResult {
	now := make(map[string]int, len(deliveries))
	for _, d := range deliveries {
		now[d.ItemID] += d.Quantity
	}

	result := FulfillmentResult{Items: make([]ItemOutcome, 0, len(items))}

	active, complete, touched := 0, 0, 0
	for _, it := range items {
		out := ItemOutcome{
			ItemID:            it.ItemID,
			StockID:           it.StockID,
			QuantityOrdered:   it.QuantityOrdered,
			QuantityDelivered: it.PriorDelivered,
			QuantityBackorder: it.QuantityOrdered - it.PriorDelivered,
			Status:            it.Status,
		}

		if it.Status == domain.ItemStatusCancelled {
			result.Items = append(result.Items, out)
			continue
		}

		delivered := min(it.QuantityOrdered, it.PriorDelivered+now[it.ItemID])
		out.QuantityDelivered = delivered
		out.QuantityBackorder = it.QuantityOrdered - delivered

		if added := delivered - it.PriorDelivered; added > 0 {
			result.Increases = append(result.Increases, StockIncrease{
				ItemID:   it.ItemID,
				StockID:  it.StockID,
				Quantity: added,
			})
		}

		active++
		if out.QuantityBackorder == 0 {
			complete++
		}
		if delivered > 0 {
			touched++
		}
		result.Items = append(result.Items, out)
	}

	switch {
	case active > 0 && complete == active:
		result.OrderStatus = domain.OrderStatusDelivered
	case touched > 0:
		result.OrderStatus = domain.OrderStatusPartialDelivered
	}

	finalizing := result.OrderStatus == domain.OrderStatusDelivered ||
		result.OrderStatus == domain.OrderStatusPartialDelivered

	for i := range result.Items {
		out := &result.Items[i]
		if out.Status == domain.ItemStatusCancelled {
			continue
		}
		switch {
		case out.QuantityBackorder == 0:
			out.Status = domain.ItemStatusDelivered
		case out.QuantityDelivered > 0:
			out.Status = domain.ItemStatusPartial
		case finalizing:
			out.Status = domain.ItemStatusBackorder
		default:
			out.Status = domain.ItemStatusPending
		}
	}

	return result
}

// TotalIncrease soma as unidades que devem entrar no estoque.
func (r FulfillmentResult) TotalIncrease() int {
	total := 0
	for _, inc := range r.Increases {
		total += inc.Quantity
	}
	return total
}
