package partservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/cache"
	"partstock/internal/pkg/logger"
)

// PartRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência (DB, Cache).
type PartRepository interface {
	Save(ctx context.Context, part domain.Part) (domain.Part, error)
	FindByID(ctx context.Context, id string) (domain.Part, error)
	FindAll(ctx context.Context, filter domain.PartFilter) ([]domain.Part, error)
	Update(ctx context.Context, part domain.Part) (domain.Part, error)
	Delete(ctx context.Context, id string) error
}

// Service implementa as regras do catálogo de peças.
type Service struct {
	repo   PartRepository
	cache  *cache.CollectionCache
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Peças.
// collections pode ser nil (sem cache de listagens).
func NewService(repo PartRepository, collections *cache.CollectionCache, logger logger.Logger) *Service {
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

// CreatePart cadastra uma nova peça.
func (s *Service) CreatePart(ctx domain.Context, part domain.Part) (domain.Part, error) {
	ctxGo := s.goContext(ctx, "CreatePart")

	normalize(&part)
	if part.Name == "" || part.SKU == "" {
		return domain.Part{}, apperror.NewValidationError("Nome e SKU são obrigatórios para a peça.")
	}
	part.ID = ""

	created, err := s.repo.Save(ctxGo, part)
	if err != nil {
		return domain.Part{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionParts)
	return created, nil
}

// GetPartByID busca uma peça pelo ID.
func (s *Service) GetPartByID(ctx domain.Context, id string) (domain.Part, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Part{}, apperror.NewValidationError("O ID da peça deve ser um UUID válido.")
	}
	return s.repo.FindByID(s.goContext(ctx, "GetPartByID"), id)
}

// ListParts lista peças, servindo a partir do cache de coleções quando possível.
func (s *Service) ListParts(ctx domain.Context, filter domain.PartFilter) ([]domain.Part, error) {
	ctxGo := s.goContext(ctx, "ListParts")

	if filter.Limit < 0 || filter.Page < 0 {
		return nil, apperror.NewValidationError("Paginação inválida.")
	}

	variant := fmt.Sprintf("name=%s|sku=%s|category=%s|page=%d|limit=%d",
		filter.Name, filter.SKU, filter.Category, filter.Page, filter.Limit)

	return cache.Fetch(ctxGo, s.cache, cache.CollectionParts, variant, func(ctx context.Context) ([]domain.Part, error) {
		return s.repo.FindAll(ctx, filter)
	})
}

// UpdatePart altera os dados de uma peça.
func (s *Service) UpdatePart(ctx domain.Context, part domain.Part) (domain.Part, error) {
	ctxGo := s.goContext(ctx, "UpdatePart")

	if _, err := uuid.Parse(part.ID); err != nil {
		return domain.Part{}, apperror.NewValidationError("O ID da peça deve ser um UUID válido.")
	}
	normalize(&part)
	if part.Name == "" || part.SKU == "" {
		return domain.Part{}, apperror.NewValidationError("Nome e SKU são obrigatórios para a peça.")
	}

	updated, err := s.repo.Update(ctxGo, part)
	if err != nil {
		return domain.Part{}, err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionParts)
	s.logger.Info("Peça atualizada.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// DeletePart remove uma peça sem estoque cadastrado.
func (s *Service) DeletePart(ctx domain.Context, id string) error {
	ctxGo := s.goContext(ctx, "DeletePart")

	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID da peça deve ser um UUID válido.")
	}
	if err := s.repo.Delete(ctxGo, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctxGo, cache.CollectionParts)
	s.logger.Info("Peça removida.", map[string]interface{}{"id": id})
	return nil
}

func normalize(p *domain.Part) {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
}
