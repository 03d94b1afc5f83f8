package part

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partstock/internal/domain"
	"partstock/internal/pkg/httpx"
	"partstock/internal/pkg/logger"
)

// PartService define o contrato que o Handler espera da camada de Serviço.
type PartService interface {
	CreatePart(ctx domain.Context, part domain.Part) (domain.Part, error)
	GetPartByID(ctx domain.Context, id string) (domain.Part, error)
	ListParts(ctx domain.Context, filter domain.PartFilter) ([]domain.Part, error)
	UpdatePart(ctx domain.Context, part domain.Part) (domain.Part, error)
	DeletePart(ctx domain.Context, id string) error
}

// Handler agrupa os handlers do catálogo de peças.
type Handler struct {
	Service   PartService
	Validator httpx.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc PartService, v httpx.Validator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// CreatePartHandler lida com a requisição POST /v1/parts.
// @Summary Cria uma nova peça
// @Tags parts
// @Accept json
// @Produce json
// @Param part body domain.Part true "Dados da peça"
// @Success 201 {object} domain.Part
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "SKU já cadastrado"
// @Security ApiKeyAuth
// @Router /parts [post]
func (h *Handler) CreatePartHandler(w http.ResponseWriter, r *http.Request) {
	var part domain.Part
	if err := httpx.Decode(r, h.Validator, &part); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreatePart(r.Context(), part)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// GetPartByIDHandler lida com a requisição GET /v1/parts/{id}.
// @Summary Obtém uma peça por ID
// @Tags parts
// @Produce json
// @Param id path string true "ID da peça"
// @Success 200 {object} domain.Part
// @Failure 404 {object} domain.ErrorResponse "Peça não encontrada"
// @Router /parts/{id} [get]
func (h *Handler) GetPartByIDHandler(w http.ResponseWriter, r *http.Request) {
	part, err := h.Service.GetPartByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, part)
}

// ListPartsHandler lida com a requisição GET /v1/parts.
// @Summary Lista peças
// @Tags parts
// @Produce json
// @Param name query string false "Filtro por nome (parcial)"
// @Param sku query string false "Filtro por SKU"
// @Param category query string false "Filtro por categoria"
// @Param page query int false "Página (a partir de 1)"
// @Param limit query int false "Itens por página"
// @Success 200 {array} domain.Part
// @Router /parts [get]
func (h *Handler) ListPartsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := httpx.QueryInt(r, "page")
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	limit, err := httpx.QueryInt(r, "limit")
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	q := r.URL.Query()
	parts, err := h.Service.ListParts(r.Context(), domain.PartFilter{
		Page:     page,
		Limit:    limit,
		Name:     q.Get("name"),
		SKU:      q.Get("sku"),
		Category: q.Get("category"),
	})
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, parts)
}

// UpdatePartHandler lida com a requisição PUT /v1/parts/{id}.
// @Summary Atualiza uma peça
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "ID da peça"
// @Param part body domain.Part true "Novos dados da peça"
// @Success 200 {object} domain.Part
// @Failure 404 {object} domain.ErrorResponse "Peça não encontrada"
// @Security ApiKeyAuth
// @Router /parts/{id} [put]
func (h *Handler) UpdatePartHandler(w http.ResponseWriter, r *http.Request) {
	var part domain.Part
	if err := httpx.Decode(r, h.Validator, &part); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	part.ID = chi.URLParam(r, "id")

	updated, err := h.Service.UpdatePart(r.Context(), part)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// DeletePartHandler lida com a requisição DELETE /v1/parts/{id}.
// @Summary Remove uma peça
// @Tags parts
// @Param id path string true "ID da peça"
// @Success 204
// @Failure 409 {object} domain.ErrorResponse "Peça com estoque cadastrado"
// @Security ApiKeyAuth
// @Router /parts/{id} [delete]
func (h *Handler) DeletePartHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePart(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.NoContent(w)
}
