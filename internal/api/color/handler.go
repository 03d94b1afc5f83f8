package color

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partstock/internal/domain"
	"partstock/internal/pkg/httpx"
	"partstock/internal/pkg/logger"
)

// ColorService define o contrato que o Handler espera da camada de Serviço.
type ColorService interface {
	CreateColor(ctx domain.Context, color domain.Color) (domain.Color, error)
	GetColorByID(ctx domain.Context, id string) (domain.Color, error)
	GetAllColors(ctx domain.Context) ([]domain.Color, error)
	UpdateColor(ctx domain.Context, color domain.Color) (domain.Color, error)
	DeleteColor(ctx domain.Context, id string) error
}

// Handler agrupa todos os métodos de Handler de cores.
type Handler struct {
	Service   ColorService
	Validator httpx.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ColorService, v httpx.Validator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// CreateColorHandler lida com a requisição POST /v1/colors.
// @Summary Cria uma nova cor
// @Tags colors
// @Accept json
// @Produce json
// @Param color body domain.Color true "Dados da cor"
// @Success 201 {object} domain.Color "Cor criada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Cor já existe"
// @Security ApiKeyAuth
// @Router /colors [post]
func (h *Handler) CreateColorHandler(w http.ResponseWriter, r *http.Request) {
	var color domain.Color
	if err := httpx.Decode(r, h.Validator, &color); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateColor(r.Context(), color)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// GetColorByIDHandler lida com a requisição GET /v1/colors/{id}.
// @Summary Obtém uma cor por ID
// @Tags colors
// @Produce json
// @Param id path string true "ID da cor"
// @Success 200 {object} domain.Color
// @Failure 404 {object} domain.ErrorResponse "Cor não encontrada"
// @Router /colors/{id} [get]
func (h *Handler) GetColorByIDHandler(w http.ResponseWriter, r *http.Request) {
	color, err := h.Service.GetColorByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, color)
}

// GetAllColorsHandler lida com a requisição GET /v1/colors.
// @Summary Lista todas as cores
// @Tags colors
// @Produce json
// @Success 200 {array} domain.Color
// @Router /colors [get]
func (h *Handler) GetAllColorsHandler(w http.ResponseWriter, r *http.Request) {
	colors, err := h.Service.GetAllColors(r.Context())
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, colors)
}

// UpdateColorHandler lida com a requisição PUT /v1/colors/{id}.
// @Summary Atualiza uma cor
// @Tags colors
// @Accept json
// @Produce json
// @Param id path string true "ID da cor"
// @Param color body domain.Color true "Novos dados"
// @Success 200 {object} domain.Color
// @Failure 404 {object} domain.ErrorResponse "Cor não encontrada"
// @Security ApiKeyAuth
// @Router /colors/{id} [put]
func (h *Handler) UpdateColorHandler(w http.ResponseWriter, r *http.Request) {
	var color domain.Color
	if err := httpx.Decode(r, h.Validator, &color); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	color.ID = chi.URLParam(r, "id")

	updated, err := h.Service.UpdateColor(r.Context(), color)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// DeleteColorHandler lida com a requisição DELETE /v1/colors/{id}.
// @Summary Remove uma cor
// @Tags colors
// @Param id path string true "ID da cor"
// @Success 204
// @Failure 409 {object} domain.ErrorResponse "Cor com estoque cadastrado"
// @Security ApiKeyAuth
// @Router /colors/{id} [delete]
func (h *Handler) DeleteColorHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteColor(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.NoContent(w)
}
