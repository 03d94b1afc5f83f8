package stockrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"partstock/internal/domain"
	"partstock/internal/errors"
	"partstock/internal/pkg/database"
	"partstock/internal/pkg/logger"
	"partstock/internal/stockcalc"
)

const stockColumns = `id, part_id, color_id, quantity, min_stock_level, purchase_price, selling_price, version, created_at, updated_at`

const transactionColumns = `id, stock_id, type, quantity_change, quantity_before, quantity_after, reference, note, created_by, created_at`

// StockRepository persiste os níveis de estoque Peça x Cor e o razão de movimentações.
type StockRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	TxOptions database.TxOptions
	logger    logger.Logger
}

// NewStockRepository cria e retorna uma nova instância do Repositório de Estoque.
func NewStockRepository(db *sql.DB, dbTimeout time.Duration, maxRetries int, logger logger.Logger) *StockRepository {
	opts := database.DefaultTxOptions()
	opts.MaxRetries = maxRetries
	return &StockRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		TxOptions: opts,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStock(row rowScanner) (domain.PartColorStock, error) {
	var s domain.PartColorStock
	err := row.Scan(
		&s.ID, &s.PartID, &s.ColorID, &s.Quantity, &s.MinStockLevel,
		&s.PurchasePrice, &s.SellingPrice, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func scanTransaction(row rowScanner) (domain.InventoryTransaction, error) {
	var t domain.InventoryTransaction
	err := row.Scan(
		&t.ID, &t.StockID, &t.Type, &t.QuantityChange, &t.QuantityBefore, &t.QuantityAfter,
		&t.Reference, &t.Note, &t.CreatedBy, &t.CreatedAt,
	)
	return t, err
}

// CreateStock cadastra uma combinação Peça x Cor. Uma quantidade inicial maior que zero
// gera o primeiro lançamento do razão na mesma transação.
func (r *StockRepository) CreateStock(ctx context.Context, stock domain.PartColorStock, createdBy string) (domain.PartColorStock, error) {
	r.logger.Debug("Iniciando CreateStock no repositório.", map[string]interface{}{"part_id": stock.PartID, "color_id": stock.ColorID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	now := time.Now().UTC()
	stock.ID = uuid.NewString()
	stock.Version = 1
	stock.CreatedAt = now
	stock.UpdatedAt = now

	var created domain.PartColorStock
	err := database.WithTransaction(ctxTimeout, r.DB, r.TxOptions, func(tx *sql.Tx) error {
		query := `
            INSERT INTO part_color_stocks (` + stockColumns + `)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING ` + stockColumns

		var err error
		created, err = scanStock(tx.QueryRowContext(ctxTimeout, query,
			stock.ID, stock.PartID, stock.ColorID, stock.Quantity, stock.MinStockLevel,
			stock.PurchasePrice, stock.SellingPrice, stock.Version, stock.CreatedAt, stock.UpdatedAt,
		))
		if err != nil {
			return err
		}

		if created.Quantity > 0 {
			_, err = insertTransaction(ctxTimeout, tx, domain.InventoryTransaction{
				StockID:        created.ID,
				Type:           domain.TransactionTypeAdjustment,
				QuantityChange: created.Quantity,
				QuantityBefore: 0,
				QuantityAfter:  created.Quantity,
				Note:           "Saldo inicial",
				CreatedBy:      createdBy,
			})
		}
		return err
	})
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return domain.PartColorStock{}, errors.NewConflictError("Já existe estoque cadastrado para esta peça nesta cor.")
		case database.IsForeignKeyViolation(err):
			return domain.PartColorStock{}, errors.NewNotFoundError("Peça ou cor informada não existe.")
		}
		r.logger.Error("Falha ao criar estoque no DB.", err)
		return domain.PartColorStock{}, errors.NewDBError("Falha ao criar estoque", err)
	}

	r.logger.Info("Estoque criado com sucesso.", map[string]interface{}{"id": created.ID, "quantity": created.Quantity})
	return created, nil
}

// GetStockByID busca o nível de estoque pelo ID.
func (r *StockRepository) GetStockByID(ctx context.Context, id string) (domain.PartColorStock, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + stockColumns + ` FROM part_color_stocks WHERE id = $1`

	stock, err := scanStock(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		r.logger.Info("Estoque não encontrado.", map[string]interface{}{"id": id})
		return domain.PartColorStock{}, errors.NewNotFoundError(fmt.Sprintf("Estoque com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar estoque no DB.", err)
		return domain.PartColorStock{}, errors.NewDBError("Falha ao buscar estoque", err)
	}

	return stock, nil
}

// ListStocks lista os estoques, opcionalmente filtrados por peça e/ou cor.
// O filtro por status é derivado e aplicado pelo serviço.
func (r *StockRepository) ListStocks(ctx context.Context, filter domain.StockFilter) ([]domain.PartColorStock, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var (
		conditions []string
		args       []interface{}
	)
	if filter.PartID != "" {
		args = append(args, filter.PartID)
		conditions = append(conditions, fmt.Sprintf("part_id = $%d", len(args)))
	}
	if filter.ColorID != "" {
		args = append(args, filter.ColorID)
		conditions = append(conditions, fmt.Sprintf("color_id = $%d", len(args)))
	}

	query := `SELECT ` + stockColumns + ` FROM part_color_stocks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar ListStocks query.", err)
		return nil, errors.NewDBError("Falha ao listar estoques", err)
	}
	defer rows.Close()

	stocks := make([]domain.PartColorStock, 0)
	for rows.Next() {
		stock, err := scanStock(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear estoque na iteração de ListStocks.", err)
			return nil, errors.NewDBError("Falha ao mapear estoques do DB", err)
		}
		stocks = append(stocks, stock)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de estoques", err)
	}

	r.logger.Debug("ListStocks concluído.", map[string]interface{}{"total": len(stocks)})
	return stocks, nil
}

// UpdateStock altera estoque mínimo e preços, com controle de concorrência otimista (OCC).
// stock.Version deve ser a versão lida pelo cliente.
func (r *StockRepository) UpdateStock(ctx context.Context, stock domain.PartColorStock) (domain.PartColorStock, error) {
	r.logger.Debug("Iniciando UpdateStock no repositório.", map[string]interface{}{"id": stock.ID, "version": stock.Version})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE part_color_stocks
        SET min_stock_level = $1, purchase_price = $2, selling_price = $3, version = version + 1, updated_at = $4
        WHERE id = $5 AND version = $6
        RETURNING ` + stockColumns

	updated, err := scanStock(r.DB.QueryRowContext(ctxTimeout, query,
		stock.MinStockLevel, stock.PurchasePrice, stock.SellingPrice, time.Now().UTC(), stock.ID, stock.Version,
	))
	if err == sql.ErrNoRows {
		// Nenhuma linha: ou o estoque não existe, ou a versão está desatualizada.
		if _, getErr := r.GetStockByID(ctx, stock.ID); getErr != nil {
			return domain.PartColorStock{}, getErr
		}
		r.logger.Warn("Falha no controle de concorrência otimista (OCC). Versão do registro desatualizada.", map[string]interface{}{
			"id":               stock.ID,
			"expected_version": stock.Version,
		})
		return domain.PartColorStock{}, errors.NewConflictError("O estoque foi modificado por outra operação. Recarregue e tente novamente.")
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar estoque.", err)
		return domain.PartColorStock{}, errors.NewDBError("Falha ao atualizar estoque", err)
	}

	r.logger.Info("Estoque atualizado com sucesso.", map[string]interface{}{"id": updated.ID, "new_version": updated.Version})
	return updated, nil
}

// AdjustStock aplica um ajuste de quantidade e grava o lançamento do razão em uma única transação.
// Falhas transitórias (deadlock, serialização) repetem a transação inteira.
func (r *StockRepository) AdjustStock(ctx context.Context, req domain.StockAdjustmentRequest) (domain.StockAdjustmentResult, error) {
	r.logger.Debug("Iniciando ajuste de estoque no repositório.", map[string]interface{}{
		"stock_id": req.StockID,
		"mode":     req.Mode,
		"amount":   req.Amount,
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var result domain.StockAdjustmentResult
	err := database.WithRetry(ctxTimeout, r.DB, r.TxOptions, func(tx *sql.Tx) error {
		stock, entry, err := ApplyMovement(ctxTimeout, tx, Movement{
			StockID:   req.StockID,
			Mode:      req.Mode,
			Amount:    req.Amount,
			Type:      req.Type,
			Reference: req.Reference,
			Note:      req.Note,
			CreatedBy: req.CreatedBy,
		})
		if err != nil {
			return err
		}
		result = domain.StockAdjustmentResult{Stock: stock, Transaction: entry}
		return nil
	})
	if err != nil {
		if _, ok := errors.As(err); ok {
			return domain.StockAdjustmentResult{}, err
		}
		r.logger.Error("Falha ao ajustar estoque.", err)
		return domain.StockAdjustmentResult{}, errors.NewDBError("Falha ao ajustar estoque", err)
	}

	r.logger.Info("Estoque ajustado com sucesso.", map[string]interface{}{
		"stock_id":        req.StockID,
		"quantity_before": result.Transaction.QuantityBefore,
		"quantity_after":  result.Transaction.QuantityAfter,
		"new_version":     result.Stock.Version,
	})
	return result, nil
}

// ListTransactions lista lançamentos do razão na ordem em que foram gravados.
func (r *StockRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.InventoryTransaction, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var (
		conditions []string
		args       []interface{}
	)
	if filter.StockID != "" {
		args = append(args, filter.StockID)
		conditions = append(conditions, fmt.Sprintf("stock_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY seq"

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar ListTransactions query.", err)
		return nil, errors.NewDBError("Falha ao listar lançamentos do razão", err)
	}
	defer rows.Close()

	transactions := make([]domain.InventoryTransaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear lançamento do razão.", err)
			return nil, errors.NewDBError("Falha ao mapear lançamentos do DB", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de lançamentos", err)
	}

	return transactions, nil
}

// Movement descreve uma movimentação de estoque a ser aplicada dentro de uma transação.
type Movement struct {
	StockID   string
	Mode      domain.AdjustmentMode
	Amount    int
	Type      domain.TransactionType
	Reference string
	Note      string
	CreatedBy string
}

// ApplyMovement bloqueia a linha do estoque, aplica o ajuste e grava o lançamento do razão
// usando a transação recebida. Quem chama decide commit ou rollback.
func ApplyMovement(ctx context.Context, tx *sql.Tx, m Movement) (domain.PartColorStock, domain.InventoryTransaction, error) {
	// 1. Bloqueia o estoque (FOR UPDATE) e lê a versão atual
	current, err := scanStock(tx.QueryRowContext(ctx,
		`SELECT `+stockColumns+` FROM part_color_stocks WHERE id = $1 FOR UPDATE`, m.StockID))
	if err == sql.ErrNoRows {
		return domain.PartColorStock{}, domain.InventoryTransaction{}, errors.NewNotFoundError(fmt.Sprintf("Estoque com ID %s não encontrado.", m.StockID))
	}
	if err != nil {
		return domain.PartColorStock{}, domain.InventoryTransaction{}, err
	}

	// 2. Calcula a nova quantidade (nunca negativa)
	adj := stockcalc.Adjust(current.Quantity, m.Mode, m.Amount)

	// 3. Atualiza com OCC
	updated, err := scanStock(tx.QueryRowContext(ctx, `
        UPDATE part_color_stocks
        SET quantity = $1, version = version + 1, updated_at = $2
        WHERE id = $3 AND version = $4
        RETURNING `+stockColumns,
		adj.After, time.Now().UTC(), current.ID, current.Version,
	))
	if err == sql.ErrNoRows {
		return domain.PartColorStock{}, domain.InventoryTransaction{}, errors.NewConflictError("O estoque foi modificado por outra operação. Tente novamente.")
	}
	if err != nil {
		return domain.PartColorStock{}, domain.InventoryTransaction{}, err
	}

	// 4. Grava o lançamento imutável do razão
	entry, err := insertTransaction(ctx, tx, domain.InventoryTransaction{
		StockID:        current.ID,
		Type:           m.Type,
		QuantityChange: adj.Delta,
		QuantityBefore: adj.Before,
		QuantityAfter:  adj.After,
		Reference:      m.Reference,
		Note:           m.Note,
		CreatedBy:      m.CreatedBy,
	})
	if err != nil {
		return domain.PartColorStock{}, domain.InventoryTransaction{}, err
	}

	return updated, entry, nil
}

func insertTransaction(ctx context.Context, tx *sql.Tx, t domain.InventoryTransaction) (domain.InventoryTransaction, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()

	query := `
        INSERT INTO inventory_transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + transactionColumns

	return scanTransaction(tx.QueryRowContext(ctx, query,
		t.ID, t.StockID, t.Type, t.QuantityChange, t.QuantityBefore, t.QuantityAfter,
		t.Reference, t.Note, t.CreatedBy, t.CreatedAt,
	))
}
