package report

import (
	"context"
	"net/http"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/httpx"
	"partstock/internal/pkg/logger"
)

// ReportService define o contrato dos relatórios por período e do painel.
type ReportService interface {
	TransactionsReport(ctx context.Context, q domain.ReportQuery) (domain.Report, error)
	OrdersReport(ctx context.Context, q domain.ReportQuery) (domain.Report, error)
	Dashboard(ctx context.Context) (domain.DashboardSummary, error)
}

type Handler struct {
	Service ReportService
	Logger  logger.Logger
}

func NewHandler(svc ReportService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// parseQuery lê granularity, field, from e to. A granularidade padrão é month.
func parseQuery(r *http.Request) (domain.ReportQuery, error) {
	q := r.URL.Query()
	query := domain.ReportQuery{
		Granularity: domain.Granularity(q.Get("granularity")),
		Field:       q.Get("field"),
	}
	if query.Granularity == "" {
		query.Granularity = domain.GranularityMonth
	}
	if !query.Granularity.IsValid() {
		return query, apperror.NewValidationError("granularidade inválida: use week, month ou year")
	}

	var err error
	if query.From, err = httpx.QueryDate(r, "from", false); err != nil {
		return query, err
	}
	if query.To, err = httpx.QueryDate(r, "to", true); err != nil {
		return query, err
	}
	if !query.From.IsZero() && !query.To.IsZero() && !query.From.Before(query.To) {
		return query, apperror.NewValidationError("'from' deve ser anterior a 'to'")
	}
	return query, nil
}

// TransactionsReportHandler lida com a requisição GET /v1/reports/transactions.
// @Summary Movimentações agrupadas por período
// @Tags reports
// @Produce json
// @Param granularity query string false "week, month (padrão) ou year"
// @Param field query string false "quantity_change (padrão), units_in ou units_out"
// @Param type query string false "Tipo de movimentação"
// @Param from query string false "Data inicial"
// @Param to query string false "Data final"
// @Success 200 {object} domain.Report
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Router /reports/transactions [get]
func (h *Handler) TransactionsReportHandler(w http.ResponseWriter, r *http.Request) {
	query, err := parseQuery(r)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	query.Type = domain.TransactionType(r.URL.Query().Get("type"))
	if query.Type != "" && !query.Type.IsValid() {
		httpx.Error(w, r, h.Logger, apperror.NewValidationError("tipo de movimentação inválido: "+string(query.Type)))
		return
	}

	report, err := h.Service.TransactionsReport(r.Context(), query)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

// OrdersReportHandler lida com a requisição GET /v1/reports/orders.
// @Summary Pedidos agrupados por período
// @Tags reports
// @Produce json
// @Param granularity query string false "week, month (padrão) ou year"
// @Param field query string false "total_amount (padrão), quantity_ordered ou quantity_delivered"
// @Param status query string false "Status do pedido"
// @Param from query string false "Data inicial"
// @Param to query string false "Data final"
// @Success 200 {object} domain.Report
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Router /reports/orders [get]
func (h *Handler) OrdersReportHandler(w http.ResponseWriter, r *http.Request) {
	query, err := parseQuery(r)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	query.Status = domain.OrderStatus(r.URL.Query().Get("status"))
	if query.Status != "" && !query.Status.IsValid() {
		httpx.Error(w, r, h.Logger, apperror.NewValidationError("status de pedido inválido: "+string(query.Status)))
		return
	}

	report, err := h.Service.OrdersReport(r.Context(), query)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

// DashboardHandler lida com a requisição GET /v1/reports/dashboard.
// @Summary Resumo do estoque e dos pedidos
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Router /reports/dashboard [get]
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Dashboard(r.Context())
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
