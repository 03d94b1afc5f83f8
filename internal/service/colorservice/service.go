package colorservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/cache"
	"partstock/internal/pkg/logger"
)

// ColorRepository define o contrato que o Serviço de Cores espera da camada de Persistência.
type ColorRepository interface {
	CreateColor(ctx context.Context, color domain.Color) (domain.Color, error)
	GetColorByID(ctx context.Context, id string) (domain.Color, error)
	GetAllColors(ctx context.Context) ([]domain.Color, error)
	UpdateColor(ctx context.Context, color domain.Color) (domain.Color, error)
	DeleteColor(ctx context.Context, id string) error
}

// Service implementa as regras de cadastro de cores.
type Service struct {
	repo   ColorRepository
	cache  *cache.CollectionCache
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Cores.
func NewService(repo ColorRepository, collections *cache.CollectionCache, logger logger.Logger) *Service {
	return &Service{repo: repo, cache: collections, logger: logger}
}

// CreateColor cria uma nova cor após validações de negócio.
func (s *Service) CreateColor(ctx domain.Context, color domain.Color) (domain.Color, error) {
	s.logger.Debug("Iniciando criação de cor no serviço.", map[string]interface{}{"name": color.Name})

	if err := s.validateColor(&color); err != nil {
		s.logger.Warn("Falha na validação da cor.", map[string]interface{}{"name": color.Name, "error": err.Error()})
		return domain.Color{}, err
	}

	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
		s.logger.Warn("Contexto de domínio inválido, usando context.Background() para CreateColor", nil)
	}

	color.ID = ""
	created, err := s.repo.CreateColor(ctxGo, color)
	if err != nil {
		return domain.Color{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionColors)
	return created, nil
}

// GetColorByID busca uma cor pelo ID após validações de formato.
func (s *Service) GetColorByID(ctx domain.Context, id string) (domain.Color, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("ID de cor inválido fornecido.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Color{}, apperror.NewValidationError("O ID da cor deve ser um UUID válido.")
	}

	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	return s.repo.GetColorByID(ctxGo, id)
}

// GetAllColors busca todas as cores (listagem cacheada).
func (s *Service) GetAllColors(ctx domain.Context) ([]domain.Color, error) {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	return cache.Fetch(ctxGo, s.cache, cache.CollectionColors, "all", s.repo.GetAllColors)
}

// UpdateColor atualiza uma cor existente.
func (s *Service) UpdateColor(ctx domain.Context, color domain.Color) (domain.Color, error) {
	if _, err := uuid.Parse(color.ID); err != nil {
		return domain.Color{}, apperror.NewValidationError("O ID da cor deve ser um UUID válido.")
	}
	if err := s.validateColor(&color); err != nil {
		return domain.Color{}, err
	}

	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	updated, err := s.repo.UpdateColor(ctxGo, color)
	if err != nil {
		return domain.Color{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionColors)
	s.logger.Info("Cor atualizada com sucesso.", map[string]interface{}{"id": updated.ID, "name": updated.Name})
	return updated, nil
}

// DeleteColor remove uma cor.
func (s *Service) DeleteColor(ctx domain.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID da cor deve ser um UUID válido.")
	}

	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	if err := s.repo.DeleteColor(ctxGo, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionColors)
	s.logger.Info("Cor deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// validateColor normaliza e valida nome e código hexadecimal.
func (s *Service) validateColor(color *domain.Color) error {
	color.Name = strings.TrimSpace(color.Name)
	color.HexCode = strings.ToUpper(strings.TrimSpace(color.HexCode))

	if color.Name == "" {
		return apperror.NewValidationError("O nome da cor não pode ser vazio.")
	}
	if len(color.Name) < 2 || len(color.Name) > 100 {
		return apperror.NewValidationError("O nome da cor deve ter entre 2 e 100 caracteres.")
	}
	if color.HexCode != "" && !strings.HasPrefix(color.HexCode, "#") {
		return apperror.NewValidationError("O código da cor deve começar com '#'.")
	}
	return nil
}
