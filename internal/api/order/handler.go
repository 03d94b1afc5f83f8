package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/httpx"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/middleware"
)

// OrderService define o contrato que o Handler espera da camada de Serviço.
type OrderService interface {
	CreateOrder(ctx domain.Context, req domain.OrderCreateRequest) (domain.Order, error)
	GetOrderByID(ctx domain.Context, id string) (domain.Order, error)
	ListOrders(ctx domain.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx domain.Context, id string, to domain.OrderStatus) (domain.Order, error)
	RecordDelivery(ctx domain.Context, orderID string, req domain.DeliveryRequest) (domain.DeliveryResult, error)
}

// Handler agrupa os handlers de pedidos ao fornecedor.
type Handler struct {
	Service   OrderService
	Validator httpx.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc OrderService, v httpx.Validator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// CreateOrderHandler lida com a requisição POST /v1/orders.
// @Summary Cria um pedido ao fornecedor
// @Tags orders
// @Accept json
// @Produce json
// @Param order body domain.OrderCreateRequest true "Fornecedor e itens"
// @Success 201 {object} domain.Order
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Estoque inexistente"
// @Security ApiKeyAuth
// @Router /orders [post]
func (h *Handler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderCreateRequest
	if err := httpx.Decode(r, h.Validator, &req); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

// GetOrderByIDHandler lida com a requisição GET /v1/orders/{id}.
// @Summary Obtém um pedido com seus itens
// @Tags orders
// @Produce json
// @Param id path string true "ID do pedido"
// @Success 200 {object} domain.Order
// @Failure 404 {object} domain.ErrorResponse "Pedido não encontrado"
// @Router /orders/{id} [get]
func (h *Handler) GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

// ListOrdersHandler lida com a requisição GET /v1/orders.
// @Summary Lista pedidos
// @Tags orders
// @Produce json
// @Param status query string false "Filtro por status"
// @Param supplier query string false "Filtro por fornecedor"
// @Param from query string false "Data inicial (YYYY-MM-DD ou RFC3339)"
// @Param to query string false "Data final, inclusiva para datas sem hora"
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (h *Handler) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	from, err := httpx.QueryDate(r, "from", false)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	to, err := httpx.QueryDate(r, "to", true)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	q := r.URL.Query()
	filter := domain.OrderFilter{
		Status:   domain.OrderStatus(q.Get("status")),
		Supplier: q.Get("supplier"),
		From:     from,
		To:       to,
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		httpx.Error(w, r, h.Logger, apperror.NewValidationError("status de pedido inválido: "+string(filter.Status)))
		return
	}

	orders, err := h.Service.ListOrders(r.Context(), filter)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

// UpdateStatusHandler lida com a requisição PATCH /v1/orders/{id}/status.
// @Summary Altera manualmente o status do pedido
// @Description delivered e partial_delivered só são alcançados via registro de entrega.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "ID do pedido"
// @Param status body domain.OrderStatusRequest true "Novo status"
// @Success 200 {object} domain.Order
// @Failure 409 {object} domain.ErrorResponse "Transição não permitida"
// @Security ApiKeyAuth
// @Router /orders/{id}/status [patch]
func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderStatusRequest
	if err := httpx.Decode(r, h.Validator, &req); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	order, err := h.Service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

// RecordDeliveryHandler lida com a requisição POST /v1/orders/{id}/deliveries.
// @Summary Registra uma entrega do fornecedor
// @Description Atualiza itens e status do pedido e dá entrada no estoque em uma única transação.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "ID do pedido"
// @Param delivery body domain.DeliveryRequest true "Quantidades entregues por item"
// @Success 200 {object} domain.DeliveryResult
// @Failure 400 {object} domain.ErrorResponse "Item desconhecido ou quantidade inválida"
// @Failure 409 {object} domain.ErrorResponse "Pedido não aceita entregas"
// @Security ApiKeyAuth
// @Router /orders/{id}/deliveries [post]
func (h *Handler) RecordDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.DeliveryRequest
	if err := httpx.Decode(r, h.Validator, &req); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok {
		req.CreatedBy = claims.UserID
	}

	result, err := h.Service.RecordDelivery(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}
