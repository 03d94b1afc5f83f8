package colorrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"partstock/internal/domain"
	"partstock/internal/errors"
	"partstock/internal/pkg/database"
	"partstock/internal/pkg/logger"
)

// ColorRepository implementa as operações CRUD de cores.
type ColorRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewColorRepository cria e retorna uma nova instância do Repositório de Cores.
func NewColorRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ColorRepository {
	return &ColorRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// CreateColor insere uma nova cor no banco de dados.
func (r *ColorRepository) CreateColor(ctx context.Context, color domain.Color) (domain.Color, error) {
	r.logger.Debug("Iniciando CreateColor no repositório.", map[string]interface{}{"name": color.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	color.CreatedAt = now
	color.UpdatedAt = now

	query := `
        INSERT INTO colors (id, name, hex_code, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, hex_code, created_at, updated_at`

	err := r.DB.QueryRowContext(ctxTimeout, query,
		color.ID, color.Name, color.HexCode, color.CreatedAt, color.UpdatedAt,
	).Scan(
		&color.ID, &color.Name, &color.HexCode, &color.CreatedAt, &color.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Color{}, errors.NewConflictError(fmt.Sprintf("A cor '%s' já existe.", color.Name))
		}
		r.logger.Error("Falha ao inserir cor no DB.", err)
		return domain.Color{}, errors.NewDBError("Falha ao criar cor", err)
	}

	r.logger.Info("Cor criada com sucesso.", map[string]interface{}{"id": color.ID, "name": color.Name})
	return color, nil
}

// GetColorByID busca uma cor pelo ID.
func (r *ColorRepository) GetColorByID(ctx context.Context, id string) (domain.Color, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, hex_code, created_at, updated_at
        FROM colors
        WHERE id = $1`

	var color domain.Color
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&color.ID, &color.Name, &color.HexCode, &color.CreatedAt, &color.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		r.logger.Info("Cor não encontrada.", map[string]interface{}{"id": id})
		return domain.Color{}, errors.NewNotFoundError(fmt.Sprintf("Cor com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar cor no DB.", err)
		return domain.Color{}, errors.NewDBError("Falha ao buscar cor", err)
	}

	return color, nil
}

// GetAllColors busca todas as cores ordenadas por nome.
func (r *ColorRepository) GetAllColors(ctx context.Context) ([]domain.Color, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, hex_code, created_at, updated_at
        FROM colors
        ORDER BY name`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar GetAllColors query.", err)
		return nil, errors.NewDBError("Falha ao buscar todas as cores", err)
	}
	defer rows.Close()

	colors := make([]domain.Color, 0)
	for rows.Next() {
		var color domain.Color
		if err := rows.Scan(&color.ID, &color.Name, &color.HexCode, &color.CreatedAt, &color.UpdatedAt); err != nil {
			r.logger.Error("Falha ao mapear cor na iteração de GetAllColors.", err)
			return nil, errors.NewDBError("Falha ao mapear cores do DB", err)
		}
		colors = append(colors, color)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de cores.", err)
		return nil, errors.NewDBError("Erro após iteração de cores", err)
	}

	r.logger.Debug("GetAllColors concluído com sucesso.", map[string]interface{}{"total_colors": len(colors)})
	return colors, nil
}

// UpdateColor atualiza uma cor existente.
func (r *ColorRepository) UpdateColor(ctx context.Context, color domain.Color) (domain.Color, error) {
	r.logger.Debug("Iniciando UpdateColor no repositório.", map[string]interface{}{"id": color.ID, "name": color.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE colors
        SET name = $1, hex_code = $2, updated_at = $3
        WHERE id = $4
        RETURNING id, name, hex_code, created_at, updated_at`

	err := r.DB.QueryRowContext(ctxTimeout, query,
		color.Name, color.HexCode, time.Now().UTC(), color.ID,
	).Scan(
		&color.ID, &color.Name, &color.HexCode, &color.CreatedAt, &color.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Color{}, errors.NewNotFoundError(fmt.Sprintf("Cor com ID %s não encontrada para atualização.", color.ID))
	}
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Color{}, errors.NewConflictError(fmt.Sprintf("A cor '%s' já existe.", color.Name))
		}
		r.logger.Error("Falha ao atualizar cor no DB.", err)
		return domain.Color{}, errors.NewDBError("Falha ao atualizar cor", err)
	}

	r.logger.Info("Cor atualizada com sucesso.", map[string]interface{}{"id": color.ID, "name": color.Name})
	return color, nil
}

// DeleteColor remove uma cor pelo ID.
func (r *ColorRepository) DeleteColor(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando DeleteColor no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM colors WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewConflictError("A cor possui estoque cadastrado e não pode ser removida.")
		}
		r.logger.Error("Falha ao deletar cor do DB.", err)
		return errors.NewDBError("Falha ao deletar cor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteColor.", err)
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Cor não encontrada para exclusão.", map[string]interface{}{"id": id})
		return errors.NewNotFoundError(fmt.Sprintf("Cor com ID %s não encontrada para exclusão.", id))
	}

	r.logger.Info("Cor deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}
