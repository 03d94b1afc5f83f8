package partrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"partstock/internal/domain"
	"partstock/internal/errors"
	"partstock/internal/pkg/cache"
	"partstock/internal/pkg/database"
	"partstock/internal/pkg/logger"
)

// partCacheKey é a chave de cache de uma peça individual.
const partCacheKey = "part:%s"

const partColumns = `id, sku, name, description, category, created_at, updated_at`

// PartRepository acessa o catálogo de peças.
// Ela contém as conexões necessárias para acessar dados.
type PartRepository struct {
	DB        *sql.DB      // Conexão principal com o banco de dados (PostgreSQL)
	Cache     cache.Client // Cliente para operações de cache (Redis)
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewPartRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewPartRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *PartRepository {
	return &PartRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPart(row rowScanner) (domain.Part, error) {
	var p domain.Part
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Save persiste uma nova peça.
func (r *PartRepository) Save(ctx context.Context, part domain.Part) (domain.Part, error) {
	r.logger.Debug("Iniciando Save de peça no repositório.", map[string]interface{}{"sku": part.SKU})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if part.ID == "" {
		part.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	part.CreatedAt = now
	part.UpdatedAt = now

	query := `
        INSERT INTO parts (id, sku, name, description, category, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + partColumns

	saved, err := scanPart(r.DB.QueryRowContext(ctxTimeout, query,
		part.ID, part.SKU, part.Name, part.Description, part.Category, part.CreatedAt, part.UpdatedAt,
	))
	if err != nil {
		if database.IsUniqueViolation(err) {
			r.logger.Info("SKU de peça já cadastrado.", map[string]interface{}{"sku": part.SKU})
			return domain.Part{}, errors.NewConflictError(fmt.Sprintf("Já existe uma peça com SKU '%s'.", part.SKU))
		}
		r.logger.Error("Falha ao inserir peça no DB.", err)
		return domain.Part{}, errors.NewDBError("Falha ao criar peça", err)
	}

	r.logger.Info("Peça criada com sucesso.", map[string]interface{}{"id": saved.ID, "sku": saved.SKU})
	return saved, nil
}

// FindByID busca uma peça pelo ID, utilizando a estratégia Cache-Aside.
func (r *PartRepository) FindByID(ctx context.Context, id string) (domain.Part, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(partCacheKey, id)

	// --- 1. Cache-Aside (READ) ---
	cachedData, err := r.Cache.Get(ctxGo, key)
	if err == nil {
		var part domain.Part
		if json.Unmarshal([]byte(cachedData), &part) == nil {
			r.logger.Debug("Cache HIT de peça.", map[string]interface{}{"id": id})
			return part, nil
		}
	} else if err != cache.ErrCacheMiss {
		// Falha real de cache: registra e segue para o DB.
		r.logger.Warn("Falha ao ler peça do cache.", map[string]interface{}{"id": id, "error": err.Error()})
	}

	// --- 2. Busca no Banco de Dados ---
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`

	part, err := scanPart(r.DB.QueryRowContext(ctxGo, query, id))
	if err == sql.ErrNoRows {
		return domain.Part{}, errors.NewNotFoundError(fmt.Sprintf("Peça com ID %s não existe na base de dados.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar peça no DB.", err)
		return domain.Part{}, errors.NewDBError("Falha ao buscar peça", err)
	}

	// --- 3. Cache-Aside (WRITE) ---
	if partJSON, marshalErr := json.Marshal(part); marshalErr == nil {
		if setErr := r.Cache.Set(ctxGo, key, partJSON, r.CacheTTL); setErr != nil {
			r.logger.Warn("Falha ao gravar peça no cache.", map[string]interface{}{"id": id, "error": setErr.Error()})
		}
	}

	return part, nil
}

// FindAll lista peças aplicando filtros e paginação.
func (r *PartRepository) FindAll(ctx context.Context, filter domain.PartFilter) ([]domain.Part, error) {
	r.logger.Debug("Iniciando FindAll de peças no repositório.", map[string]interface{}{"filter": filter})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var (
		conditions []string
		args       []interface{}
	)
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.SKU != "" {
		args = append(args, filter.SKU)
		conditions = append(conditions, fmt.Sprintf("sku = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT ` + partColumns + ` FROM parts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	if filter.Limit > 0 {
		page := max(filter.Page, 1)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de peças.", err)
		return nil, errors.NewDBError("Falha ao listar peças", err)
	}
	defer rows.Close()

	parts := make([]domain.Part, 0)
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear peça na iteração de FindAll.", err)
			return nil, errors.NewDBError("Falha ao mapear peças do DB", err)
		}
		parts = append(parts, part)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de peças.", err)
		return nil, errors.NewDBError("Erro após iteração de peças", err)
	}

	r.logger.Debug("FindAll de peças concluído.", map[string]interface{}{"total": len(parts)})
	return parts, nil
}

// Update atualiza uma peça existente e descarta sua entrada no cache.
func (r *PartRepository) Update(ctx context.Context, part domain.Part) (domain.Part, error) {
	r.logger.Debug("Iniciando Update de peça no repositório.", map[string]interface{}{"id": part.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE parts
        SET sku = $1, name = $2, description = $3, category = $4, updated_at = $5
        WHERE id = $6
        RETURNING ` + partColumns

	updated, err := scanPart(r.DB.QueryRowContext(ctxTimeout, query,
		part.SKU, part.Name, part.Description, part.Category, time.Now().UTC(), part.ID,
	))
	if err == sql.ErrNoRows {
		return domain.Part{}, errors.NewNotFoundError(fmt.Sprintf("Peça com ID %s não encontrada para atualização.", part.ID))
	}
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Part{}, errors.NewConflictError(fmt.Sprintf("Já existe uma peça com SKU '%s'.", part.SKU))
		}
		r.logger.Error("Falha ao atualizar peça no DB.", err)
		return domain.Part{}, errors.NewDBError("Falha ao atualizar peça", err)
	}

	r.evict(ctxTimeout, part.ID)
	r.logger.Info("Peça atualizada com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove uma peça. Peças com estoque cadastrado não podem ser removidas.
func (r *PartRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando Delete de peça no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewConflictError("A peça possui estoque cadastrado e não pode ser removida.")
		}
		r.logger.Error("Falha ao deletar peça do DB.", err)
		return errors.NewDBError("Falha ao deletar peça", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Peça com ID %s não encontrada para exclusão.", id))
	}

	r.evict(ctxTimeout, id)
	r.logger.Info("Peça deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (r *PartRepository) evict(ctx context.Context, id string) {
	if err := r.Cache.Delete(ctx, fmt.Sprintf(partCacheKey, id)); err != nil {
		r.logger.Warn("Falha ao remover peça do cache.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}
