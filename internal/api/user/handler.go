package user

import (
	"context"
	"net/http"

	"partstock/internal/domain"
	"partstock/internal/pkg/httpx"
	"partstock/internal/pkg/logger"
)

// UserService define o contrato para as operações de registro e login.
type UserService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error)
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service   UserService
	Validator httpx.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, v httpx.Validator, log logger.Logger) *Handler {
	return &Handler{
		Service:   svc,
		Validator: v,
		Logger:    log,
	}
}

// RegisterUserHandler lida com a requisição POST /v1/register.
// @Summary Registra um novo usuário
// @Description Cria um novo usuário, hasheia a senha e salva no banco de dados.
// @Tags users
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Credenciais de registro (email e senha)"
// @Success 201 {object} domain.User "Usuário criado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "E-mail já cadastrado"
// @Router /register [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var registration domain.UserRegistration
	if err := httpx.Decode(r, h.Validator, &registration); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	user, err := h.Service.Register(r.Context(), registration)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, user)
}

// LoginHandler lida com a requisição POST /v1/login.
// @Summary Autentica o usuário
// @Description Verifica as credenciais e devolve um JWT para o header Authorization.
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Email e senha"
// @Success 200 {object} domain.TokenResponse "Token de acesso"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := httpx.Decode(r, h.Validator, &req); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	httpx.JSON(w, http.StatusOK, resp)
}
