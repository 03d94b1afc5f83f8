package stock

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/httpx"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/middleware"
)

// StockService define o contrato que o Handler espera da camada de Serviço.
type StockService interface {
	CreateStock(ctx domain.Context, req domain.StockCreateRequest, createdBy string) (domain.PartColorStock, error)
	GetStockByID(ctx domain.Context, id string) (domain.PartColorStock, error)
	ListStocks(ctx domain.Context, filter domain.StockFilter) ([]domain.PartColorStock, error)
	UpdateStock(ctx domain.Context, id string, req domain.StockUpdateRequest) (domain.PartColorStock, error)
	AdjustStock(ctx domain.Context, req domain.StockAdjustmentRequest) (domain.StockAdjustmentResult, error)
	ListTransactions(ctx domain.Context, stockID string) ([]domain.InventoryTransaction, error)
	VerifyLedger(ctx domain.Context, stockID string) (domain.LedgerVerification, error)
}

// Handler agrupa todos os métodos de Handler de estoque.
type Handler struct {
	Service   StockService
	Validator httpx.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, v httpx.Validator, log logger.Logger) *Handler {
	return &Handler{
		Service:   svc,
		Validator: v,
		Logger:    log,
	}
}

// currentUser devolve o ID do usuário autenticado (vazio em rotas públicas).
func currentUser(r *http.Request) string {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		return ""
	}
	return claims.UserID
}

// CreateStockHandler lida com a requisição POST /v1/stocks.
// @Summary Cadastra o estoque de uma peça em uma cor
// @Description Cria a combinação Peça x Cor. Uma quantidade inicial maior que zero gera um lançamento no razão.
// @Tags stocks
// @Accept json
// @Produce json
// @Param stock body domain.StockCreateRequest true "Dados do estoque"
// @Success 201 {object} domain.PartColorStock
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Peça ou cor inexistente"
// @Failure 409 {object} domain.ErrorResponse "Combinação já cadastrada"
// @Security ApiKeyAuth
// @Router /stocks [post]
func (h *Handler) CreateStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StockCreateRequest
	if err := httpx.Decode(r, h.Validator, &req); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	stock, err := h.Service.CreateStock(r.Context(), req, currentUser(r))
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, stock)
}

// GetStockByIDHandler lida com a requisição GET /v1/stocks/{id}.
// @Summary Obtém um estoque por ID
// @Tags stocks
// @Produce json
// @Param id path string true "ID do estoque"
// @Success 200 {object} domain.PartColorStock
// @Failure 404 {object} domain.ErrorResponse "Estoque não encontrado"
// @Router /stocks/{id} [get]
func (h *Handler) GetStockByIDHandler(w http.ResponseWriter, r *http.Request) {
	stock, err := h.Service.GetStockByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stock)
}

// ListStocksHandler lida com a requisição GET /v1/stocks.
// @Summary Lista estoques
// @Tags stocks
// @Produce json
// @Param part_id query string false "Filtro por peça"
// @Param color_id query string false "Filtro por cor"
// @Param status query string false "out_of_stock, low_stock ou in_stock"
// @Success 200 {array} domain.PartColorStock
// @Failure 400 {object} domain.ErrorResponse "Status inválido"
// @Router /stocks [get]
func (h *Handler) ListStocksHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.StockFilter{
		PartID:  q.Get("part_id"),
		ColorID: q.Get("color_id"),
		Status:  domain.StockStatus(q.Get("status")),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		httpx.Error(w, r, h.Logger, apperror.NewValidationError("status de estoque inválido: "+string(filter.Status)))
		return
	}

	stocks, err := h.Service.ListStocks(r.Context(), filter)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stocks)
}

// UpdateStockHandler lida com a requisição PUT /v1/stocks/{id}.
// @Summary Atualiza estoque mínimo e preços
// @Description A quantidade não é alterada por esta rota; use /stocks/{id}/adjust.
// @Tags stocks
// @Accept json
// @Produce json
// @Param id path string true "ID do estoque"
// @Param stock body domain.StockUpdateRequest true "Novos valores e versão atual"
// @Success 200 {object} domain.PartColorStock
// @Failure 409 {object} domain.ErrorResponse "Versão desatualizada"
// @Security ApiKeyAuth
// @Router /stocks/{id} [put]
func (h *Handler) UpdateStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StockUpdateRequest
	if err := httpx.Decode(r, h.Validator, &req); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	stock, err := h.Service.UpdateStock(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stock)
}

// AdjustStockHandler lida com a requisição POST /v1/stocks/{id}/adjust.
// @Summary Ajusta a quantidade em estoque
// @Description Aplica set/add/remove e registra o lançamento no razão na mesma transação.
// @Tags stocks
// @Accept json
// @Produce json
// @Param id path string true "ID do estoque"
// @Param adjustment body domain.StockAdjustmentRequest true "Modo, quantidade e tipo de movimentação"
// @Success 200 {object} domain.StockAdjustmentResult
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Estoque não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Conflito de concorrência"
// @Security ApiKeyAuth
// @Router /stocks/{id}/adjust [post]
func (h *Handler) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StockAdjustmentRequest
	if err := httpx.Decode(r, h.Validator, &req); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	req.StockID = chi.URLParam(r, "id")
	req.CreatedBy = currentUser(r)

	result, err := h.Service.AdjustStock(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	h.Logger.Info("Ajuste de estoque concluído", map[string]interface{}{
		"stock_id": req.StockID,
		"mode":     req.Mode,
		"after":    result.Transaction.QuantityAfter,
	})
	httpx.JSON(w, http.StatusOK, result)
}

// ListTransactionsHandler lida com a requisição GET /v1/stocks/{id}/transactions.
// @Summary Lista o razão de um estoque
// @Tags stocks
// @Produce json
// @Param id path string true "ID do estoque"
// @Success 200 {array} domain.InventoryTransaction
// @Failure 404 {object} domain.ErrorResponse "Estoque não encontrado"
// @Router /stocks/{id}/transactions [get]
func (h *Handler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Service.ListTransactions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, txs)
}

// VerifyLedgerHandler lida com a requisição GET /v1/stocks/{id}/ledger/verify.
// @Summary Reconstrói a quantidade a partir do razão
// @Tags stocks
// @Produce json
// @Param id path string true "ID do estoque"
// @Success 200 {object} domain.LedgerVerification
// @Failure 404 {object} domain.ErrorResponse "Estoque não encontrado"
// @Router /stocks/{id}/ledger/verify [get]
func (h *Handler) VerifyLedgerHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.VerifyLedger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}
