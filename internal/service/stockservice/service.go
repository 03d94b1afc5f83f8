package stockservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/cache"
	"partstock/internal/pkg/logger"
	"partstock/internal/stockcalc"
)

// StockRepository define o contrato que o Serviço de Estoque espera da camada de Persistência.
type StockRepository interface {
	CreateStock(ctx context.Context, stock domain.PartColorStock, createdBy string) (domain.PartColorStock, error)
	GetStockByID(ctx context.Context, id string) (domain.PartColorStock, error)
	ListStocks(ctx context.Context, filter domain.StockFilter) ([]domain.PartColorStock, error)
	UpdateStock(ctx context.Context, stock domain.PartColorStock) (domain.PartColorStock, error)
	AdjustStock(ctx context.Context, req domain.StockAdjustmentRequest) (domain.StockAdjustmentResult, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.InventoryTransaction, error)
}

// Service concentra as regras de estoque: status derivado, margem, ajustes e razão.
type Service struct {
	repo   StockRepository
	cache  *cache.CollectionCache
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(repo StockRepository, collections *cache.CollectionCache, logger logger.Logger) *Service {
	return &Service{repo: repo, cache: collections, logger: logger}
}

func (s *Service) goContext(ctx domain.Context, op string) context.Context {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		s.logger.Warn("Contexto de domínio inválido, usando context.Background().", map[string]interface{}{"op": op})
		return context.Background()
	}
	return ctxGo
}

func validatePrices(purchase, selling decimal.Decimal) error {
	if purchase.IsNegative() || selling.IsNegative() {
		return apperror.NewValidationError("Preços não podem ser negativos.")
	}
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do estoque deve ser um UUID válido.")
	}
	return nil
}

// CreateStock cadastra uma combinação Peça x Cor com quantidade inicial.
func (s *Service) CreateStock(ctx domain.Context, req domain.StockCreateRequest, createdBy string) (domain.PartColorStock, error) {
	ctxGo := s.goContext(ctx, "CreateStock")

	if req.Quantity < 0 || req.MinStockLevel < 0 {
		return domain.PartColorStock{}, apperror.NewValidationError("Quantidade e estoque mínimo não podem ser negativos.")
	}
	if err := validatePrices(req.PurchasePrice, req.SellingPrice); err != nil {
		return domain.PartColorStock{}, err
	}

	stock, err := s.repo.CreateStock(ctxGo, domain.PartColorStock{
		PartID:        req.PartID,
		ColorID:       req.ColorID,
		Quantity:      req.Quantity,
		MinStockLevel: req.MinStockLevel,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
	}, createdBy)
	if err != nil {
		return domain.PartColorStock{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionStocks, cache.CollectionTransactions)
	stockcalc.Enrich(&stock)
	return stock, nil
}

// GetStockByID busca um estoque com os campos derivados preenchidos.
func (s *Service) GetStockByID(ctx domain.Context, id string) (domain.PartColorStock, error) {
	if err := validateID(id); err != nil {
		return domain.PartColorStock{}, err
	}

	stock, err := s.repo.GetStockByID(s.goContext(ctx, "GetStockByID"), id)
	if err != nil {
		return domain.PartColorStock{}, err
	}

	stockcalc.Enrich(&stock)
	return stock, nil
}

// ListStocks lista estoques; o filtro por status usa a classificação derivada.
func (s *Service) ListStocks(ctx domain.Context, filter domain.StockFilter) ([]domain.PartColorStock, error) {
	ctxGo := s.goContext(ctx, "ListStocks")

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Status de estoque desconhecido: '%s'.", filter.Status))
	}

	variant := fmt.Sprintf("part=%s|color=%s|status=%s", filter.PartID, filter.ColorID, filter.Status)
	return cache.Fetch(ctxGo, s.cache, cache.CollectionStocks, variant, func(ctx context.Context) ([]domain.PartColorStock, error) {
		stocks, err := s.repo.ListStocks(ctx, filter)
		if err != nil {
			return nil, err
		}

		filtered := make([]domain.PartColorStock, 0, len(stocks))
		for _, stock := range stocks {
			stockcalc.Enrich(&stock)
			if filter.Status != "" && stock.StockStatus != filter.Status {
				continue
			}
			filtered = append(filtered, stock)
		}
		return filtered, nil
	})
}

// UpdateStock altera estoque mínimo e preços (OCC pela versão informada).
func (s *Service) UpdateStock(ctx domain.Context, id string, req domain.StockUpdateRequest) (domain.PartColorStock, error) {
	ctxGo := s.goContext(ctx, "UpdateStock")

	if err := validateID(id); err != nil {
		return domain.PartColorStock{}, err
	}
	if req.MinStockLevel < 0 {
		return domain.PartColorStock{}, apperror.NewValidationError("O estoque mínimo não pode ser negativo.")
	}
	if req.Version < 1 {
		return domain.PartColorStock{}, apperror.NewValidationError("A versão do registro é obrigatória.")
	}
	if err := validatePrices(req.PurchasePrice, req.SellingPrice); err != nil {
		return domain.PartColorStock{}, err
	}

	stock, err := s.repo.UpdateStock(ctxGo, domain.PartColorStock{
		ID:            id,
		MinStockLevel: req.MinStockLevel,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Version:       req.Version,
	})
	if err != nil {
		return domain.PartColorStock{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionStocks)
	stockcalc.Enrich(&stock)
	return stock, nil
}

// AdjustStock aplica set/add/remove à quantidade e registra o lançamento no razão.
func (s *Service) AdjustStock(ctx domain.Context, req domain.StockAdjustmentRequest) (domain.StockAdjustmentResult, error) {
	s.logger.Debug("Iniciando ajuste de estoque no serviço.", map[string]interface{}{
		"stock_id": req.StockID,
		"mode":     req.Mode,
		"amount":   req.Amount,
	})

	// 1. Validação na fronteira (a função pura assume entrada válida)
	if err := validateID(req.StockID); err != nil {
		return domain.StockAdjustmentResult{}, err
	}
	if err := stockcalc.ValidateAdjustment(req.Mode, req.Amount); err != nil {
		return domain.StockAdjustmentResult{}, err
	}
	if !req.Type.IsValid() {
		return domain.StockAdjustmentResult{}, apperror.NewValidationError(fmt.Sprintf("Tipo de movimentação desconhecido: '%s'.", req.Type))
	}
	if !req.Type.AllowsMode(req.Mode) {
		return domain.StockAdjustmentResult{}, apperror.NewValidationError(
			fmt.Sprintf("Movimentação '%s' não aceita o modo '%s'.", req.Type, req.Mode))
	}

	ctxGo := s.goContext(ctx, "AdjustStock")

	// 2. Persistência atômica (estoque + razão)
	result, err := s.repo.AdjustStock(ctxGo, req)
	if err != nil {
		return domain.StockAdjustmentResult{}, err
	}

	if stockcalc.Clamped(result.Transaction.QuantityBefore, req.Mode, req.Amount) {
		s.logger.Warn("Retirada maior que o saldo: estoque zerado.", map[string]interface{}{
			"stock_id":  req.StockID,
			"requested": req.Amount,
			"removed":   -result.Transaction.QuantityChange,
		})
	}

	s.cache.Invalidate(ctxGo, cache.CollectionStocks, cache.CollectionTransactions)
	stockcalc.Enrich(&result.Stock)

	s.logger.Info("Estoque ajustado com sucesso.", map[string]interface{}{
		"stock_id":     req.StockID,
		"new_quantity": result.Stock.Quantity,
		"new_version":  result.Stock.Version,
		"status":       result.Stock.StockStatus,
	})
	return result, nil
}

// ListTransactions devolve o razão de um estoque em ordem cronológica.
func (s *Service) ListTransactions(ctx domain.Context, stockID string) ([]domain.InventoryTransaction, error) {
	if err := validateID(stockID); err != nil {
		return nil, err
	}
	ctxGo := s.goContext(ctx, "ListTransactions")

	// Garante 404 para estoque inexistente (em vez de lista vazia).
	if _, err := s.repo.GetStockByID(ctxGo, stockID); err != nil {
		return nil, err
	}

	return cache.Fetch(ctxGo, s.cache, cache.CollectionTransactions, "stock="+stockID, func(ctx context.Context) ([]domain.InventoryTransaction, error) {
		return s.repo.ListTransactions(ctx, domain.TransactionFilter{StockID: stockID})
	})
}

// VerifyLedger reconstrói a quantidade a partir do razão e compara com o saldo atual.
func (s *Service) VerifyLedger(ctx domain.Context, stockID string) (domain.LedgerVerification, error) {
	if err := validateID(stockID); err != nil {
		return domain.LedgerVerification{}, err
	}
	ctxGo := s.goContext(ctx, "VerifyLedger")

	stock, err := s.repo.GetStockByID(ctxGo, stockID)
	if err != nil {
		return domain.LedgerVerification{}, err
	}
	transactions, err := s.repo.ListTransactions(ctxGo, domain.TransactionFilter{StockID: stockID})
	if err != nil {
		return domain.LedgerVerification{}, err
	}

	replayed, replayErr := stockcalc.Replay(transactions)
	verification := domain.LedgerVerification{
		StockID:          stockID,
		Transactions:     len(transactions),
		ReplayedQuantity: replayed,
		LiveQuantity:     stock.Quantity,
		Consistent:       replayErr == nil && replayed == stock.Quantity,
	}

	if !verification.Consistent {
		fields := map[string]interface{}{"stock_id": stockID, "replayed": replayed, "live": stock.Quantity}
		if replayErr != nil {
			fields["error"] = replayErr.Error()
		}
		s.logger.Warn("Razão de estoque inconsistente.", fields)
	}
	return verification, nil
}
