package orderrepo

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"partstock/internal/domain"
	"partstock/internal/errors"
	"partstock/internal/pkg/database"
	"partstock/internal/pkg/logger"
	"partstock/internal/repository/stockrepo"
	"partstock/internal/stockcalc"
)

const orderColumns = `id, order_number, supplier, status, total_amount, notes, version, created_at, updated_at`

const itemColumns = `id, order_id, stock_id, quantity_ordered, quantity_delivered, quantity_backorder, unit_price, subtotal, item_status`

// queryer é satisfeito por *sql.DB e *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// OrderRepository persiste pedidos ao fornecedor e seus itens.
type OrderRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	TxOptions database.TxOptions
	logger    logger.Logger
}

// NewOrderRepository cria e retorna uma nova instância do Repositório de Pedidos.
func NewOrderRepository(db *sql.DB, dbTimeout time.Duration, maxRetries int, logger logger.Logger) *OrderRepository {
	opts := database.DefaultTxOptions()
	opts.MaxRetries = maxRetries
	return &OrderRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		TxOptions: opts,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.Supplier, &o.Status, &o.TotalAmount, &o.Notes, &o.Version, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func scanItem(row rowScanner) (domain.OrderItem, error) {
	var i domain.OrderItem
	err := row.Scan(
		&i.ID, &i.OrderID, &i.StockID, &i.QuantityOrdered, &i.QuantityDelivered,
		&i.QuantityBackorder, &i.UnitPrice, &i.Subtotal, &i.ItemStatus,
	)
	return i, err
}

// CreateOrder grava o pedido e todos os seus itens em uma transação.
// Os IDs, subtotais e o total já devem ter sido preenchidos pelo serviço.
func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.logger.Debug("Iniciando CreateOrder no repositório.", map[string]interface{}{"order_number": order.OrderNumber, "items": len(order.Items)})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var created domain.Order
	err := database.WithTransaction(ctxTimeout, r.DB, r.TxOptions, func(tx *sql.Tx) error {
		var err error
		created, err = scanOrder(tx.QueryRowContext(ctxTimeout, `
            INSERT INTO orders (`+orderColumns+`)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING `+orderColumns,
			order.ID, order.OrderNumber, order.Supplier, order.Status, order.TotalAmount,
			order.Notes, order.Version, order.CreatedAt, order.UpdatedAt,
		))
		if err != nil {
			return err
		}

		created.Items = make([]domain.OrderItem, 0, len(order.Items))
		for lineNo, item := range order.Items {
			saved, err := scanItem(tx.QueryRowContext(ctxTimeout, `
                INSERT INTO order_items (id, order_id, line_no, stock_id, quantity_ordered, quantity_delivered,
                                         quantity_backorder, unit_price, subtotal, item_status)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                RETURNING `+itemColumns,
				item.ID, created.ID, lineNo+1, item.StockID, item.QuantityOrdered, item.QuantityDelivered,
				item.QuantityBackorder, item.UnitPrice, item.Subtotal, item.ItemStatus,
			))
			if err != nil {
				return err
			}
			created.Items = append(created.Items, saved)
		}
		return nil
	})
	if err != nil {
		switch {
		case database.IsForeignKeyViolation(err):
			return domain.Order{}, errors.NewNotFoundError("Um dos estoques informados nos itens não existe.")
		case database.IsUniqueViolation(err):
			return domain.Order{}, errors.NewConflictError(fmt.Sprintf("Número de pedido '%s' já utilizado.", order.OrderNumber))
		}
		r.logger.Error("Falha ao criar pedido no DB.", err)
		return domain.Order{}, errors.NewDBError("Falha ao criar pedido", err)
	}

	r.logger.Info("Pedido criado com sucesso.", map[string]interface{}{"id": created.ID, "order_number": created.OrderNumber})
	return created, nil
}

// GetOrderByID busca o pedido e seus itens.
func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	order, err := getOrder(ctxTimeout, r.DB, id, false)
	if err != nil {
		return domain.Order{}, r.translate(err, "Falha ao buscar pedido")
	}
	return order, nil
}

// ListOrders lista os pedidos (com itens) mais recentes primeiro.
func (r *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var (
		conditions []string
		args       []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Supplier != "" {
		args = append(args, "%"+filter.Supplier+"%")
		conditions = append(conditions, fmt.Sprintf("supplier ILIKE $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar ListOrders query.", err)
		return nil, errors.NewDBError("Falha ao listar pedidos", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear pedidos do DB", err)
		}
		order.Items = make([]domain.OrderItem, 0)
		index[order.ID] = len(orders)
		ids = append(ids, order.ID)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de pedidos", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	// Carrega os itens de todos os pedidos em uma única consulta.
	itemRows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT `+itemColumns+` FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, line_no`,
		pq.Array(ids))
	if err != nil {
		r.logger.Error("Falha ao carregar itens dos pedidos.", err)
		return nil, errors.NewDBError("Falha ao listar itens dos pedidos", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item, err := scanItem(itemRows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear itens do DB", err)
		}
		pos := index[item.OrderID]
		orders[pos].Items = append(orders[pos].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de itens", err)
	}

	r.logger.Debug("ListOrders concluído.", map[string]interface{}{"total": len(orders)})
	return orders, nil
}

// UpdateStatus aplica uma transição manual de status com OCC (status e versão esperados).
// Ao cancelar, os itens ainda não entregues por completo passam a cancelled.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, expectedVersion int) (domain.Order, error) {
	r.logger.Debug("Iniciando UpdateStatus de pedido no repositório.", map[string]interface{}{"id": id, "from": from, "to": to})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var updated domain.Order
	err := database.WithTransaction(ctxTimeout, r.DB, r.TxOptions, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctxTimeout, `
            UPDATE orders SET status = $1, version = version + 1, updated_at = $2
            WHERE id = $3 AND status = $4 AND version = $5`,
			to, time.Now().UTC(), id, from, expectedVersion)
		if err != nil {
			return err
		}
		if n, err := result.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return errors.NewConflictError("O pedido foi modificado por outra operação. Recarregue e tente novamente.")
		}

		if to == domain.OrderStatusCancelled {
			if _, err := tx.ExecContext(ctxTimeout,
				`UPDATE order_items SET item_status = $1 WHERE order_id = $2 AND item_status <> $3`,
				domain.ItemStatusCancelled, id, domain.ItemStatusDelivered); err != nil {
				return err
			}
		}

		updated, err = getOrder(ctxTimeout, tx, id, false)
		return err
	})
	if err != nil {
		return domain.Order{}, r.translate(err, "Falha ao atualizar status do pedido")
	}

	r.logger.Info("Status do pedido atualizado.", map[string]interface{}{"id": id, "status": updated.Status, "new_version": updated.Version})
	return updated, nil
}

// ApplyDelivery registra entregas de forma atômica: recalcula os itens, deriva o status do pedido
// e aplica o aumento de estoque correspondente (com lançamento "purchase" no razão).
// Qualquer falha desfaz tudo; falhas transitórias repetem a transação inteira.
func (r *OrderRepository) ApplyDelivery(ctx context.Context, orderID string, deliveries []stockcalc.Delivery, createdBy string) (domain.DeliveryResult, error) {
	r.logger.Debug("Iniciando ApplyDelivery no repositório.", map[string]interface{}{"order_id": orderID, "lines": len(deliveries)})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var result domain.DeliveryResult
	err := database.WithRetry(ctxTimeout, r.DB, r.TxOptions, func(tx *sql.Tx) error {
		// 1. Bloqueia o pedido e os itens
		order, err := getOrder(ctxTimeout, tx, orderID, true)
		if err != nil {
			return err
		}
		if !order.Status.AcceptsDeliveries() {
			return errors.NewConflictError(fmt.Sprintf("Pedido em status '%s' não aceita entregas.", order.Status))
		}

		// 2. Calcula o novo estado (função pura)
		items := make([]stockcalc.FulfillmentItem, 0, len(order.Items))
		for _, it := range order.Items {
			items = append(items, stockcalc.FulfillmentItem{
				ItemID:          it.ID,
				StockID:         it.StockID,
				QuantityOrdered: it.QuantityOrdered,
				PriorDelivered:  it.QuantityDelivered,
				Status:          it.ItemStatus,
			})
		}
		if err := stockcalc.ValidateDeliveries(items, deliveries); err != nil {
			return err
		}
		fulfillment := stockcalc.Fulfill(items, deliveries)

		// 3. Persiste os itens
		for _, out := range fulfillment.Items {
			if _, err := tx.ExecContext(ctxTimeout, `
                UPDATE order_items
                SET quantity_delivered = $1, quantity_backorder = $2, item_status = $3
                WHERE id = $4`,
				out.QuantityDelivered, out.QuantityBackorder, out.Status, out.ItemID); err != nil {
				return err
			}
		}

		// 4. Persiste o status derivado (ou mantém o atual se nada foi entregue)
		status := order.Status
		if fulfillment.OrderStatus != "" {
			status = fulfillment.OrderStatus
		}
		if _, err := tx.ExecContext(ctxTimeout,
			`UPDATE orders SET status = $1, version = version + 1, updated_at = $2 WHERE id = $3`,
			status, time.Now().UTC(), order.ID); err != nil {
			return err
		}

		// 5. Aumenta o estoque de cada item entregue. A ordem por estoque evita deadlocks
		//    entre entregas concorrentes que tocam os mesmos estoques.
		increases := append([]stockcalc.StockIncrease(nil), fulfillment.Increases...)
		sort.Slice(increases, func(i, j int) bool { return increases[i].StockID < increases[j].StockID })

		entries := make([]domain.InventoryTransaction, 0, len(increases))
		for _, inc := range increases {
			_, entry, err := stockrepo.ApplyMovement(ctxTimeout, tx, stockrepo.Movement{
				StockID:   inc.StockID,
				Mode:      domain.AdjustmentModeAdd,
				Amount:    inc.Quantity,
				Type:      domain.TransactionTypePurchase,
				Reference: order.OrderNumber,
				Note:      fmt.Sprintf("Entrega do pedido %s (item %s)", order.OrderNumber, inc.ItemID),
				CreatedBy: createdBy,
			})
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}

		// 6. Relê o pedido atualizado
		updated, err := getOrder(ctxTimeout, tx, order.ID, false)
		if err != nil {
			return err
		}
		result = domain.DeliveryResult{Order: updated, Transactions: entries}
		return nil
	})
	if err != nil {
		return domain.DeliveryResult{}, r.translate(err, "Falha ao registrar entrega")
	}

	r.logger.Info("Entrega registrada com sucesso.", map[string]interface{}{
		"order_id":     orderID,
		"status":       result.Order.Status,
		"transactions": len(result.Transactions),
	})
	return result, nil
}

// OpenOrderStats conta os pedidos em aberto e as unidades ainda não entregues desses pedidos.
func (r *OrderRepository) OpenOrderStats(ctx context.Context) (openOrders int, backorderUnits int, err error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	closed := []string{string(domain.OrderStatusDelivered), string(domain.OrderStatusCancelled)}

	err = r.DB.QueryRowContext(ctxTimeout, `
        SELECT COUNT(DISTINCT o.id),
               COALESCE(SUM(CASE WHEN i.item_status <> $2 THEN i.quantity_ordered - i.quantity_delivered ELSE 0 END), 0)
        FROM orders o
        LEFT JOIN order_items i ON i.order_id = o.id
        WHERE o.status <> ALL($1)`,
		pq.Array(closed), domain.ItemStatusCancelled,
	).Scan(&openOrders, &backorderUnits)
	if err != nil {
		r.logger.Error("Falha ao calcular estatísticas de pedidos em aberto.", err)
		return 0, 0, errors.NewDBError("Falha ao calcular pedidos em aberto", err)
	}
	return openOrders, backorderUnits, nil
}

// translate preserva erros de domínio e encapsula os demais como erro de DB.
func (r *OrderRepository) translate(err error, msg string) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	r.logger.Error(msg+".", err)
	return errors.NewDBError(msg, err)
}

// getOrder lê o pedido e seus itens; forUpdate bloqueia as linhas na transação corrente.
func getOrder(ctx context.Context, q queryer, id string, forUpdate bool) (domain.Order, error) {
	lock := ""
	if forUpdate {
		lock = " FOR UPDATE"
	}

	order, err := scanOrder(q.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`+lock, id))
	if err == sql.ErrNoRows {
		return domain.Order{}, errors.NewNotFoundError(fmt.Sprintf("Pedido com ID %s não encontrado.", id))
	}
	if err != nil {
		return domain.Order{}, err
	}

	rows, err := q.QueryContext(ctx, `SELECT `+itemColumns+` FROM order_items WHERE order_id = $1 ORDER BY line_no`+lock, id)
	if err != nil {
		return domain.Order{}, err
	}
	defer rows.Close()

	order.Items = make([]domain.OrderItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return domain.Order{}, err
		}
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

// NewOrderNumber gera um número legível de pedido, ex: PO-20250102-3F9A1C2B.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PO-%s-%s", now.UTC().Format("20060102"), suffix)
}
