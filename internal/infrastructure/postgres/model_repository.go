package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.ModelRepository = (*ModelRepo)(nil)

// ModelRepo implementación del puerto ModelRepository sobre PostgreSQL.
type ModelRepo struct {
	q Querier
}

// NewModelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewModelRepository(q Querier) *ModelRepo {
	return &ModelRepo{q: q}
}

// Create persiste un nuevo modelo.
func (r *ModelRepo) Create(model *entity.Model) error {
	query := `
		INSERT INTO models (id, organization_id, category_id, name, brand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		model.ID, model.OrganizationID, model.CategoryID, model.Name, model.Brand,
		model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert model: %w", err)
	}
	return nil
}

// GetByID obtiene un modelo por ID.
func (r *ModelRepo) GetByID(id string) (*entity.Model, error) {
	query := `
		SELECT id, organization_id, category_id, name, brand, created_at, updated_at
		FROM models WHERE id = $1`
	var m entity.Model
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.OrganizationID, &m.CategoryID, &m.Name, &m.Brand, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get model: %w", err)
	}
	return &m, nil
}

// Update actualiza un modelo existente.
func (r *ModelRepo) Update(model *entity.Model) error {
	query := `
		UPDATE models SET category_id = $2, name = $3, brand = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		model.ID, model.CategoryID, model.Name, model.Brand, model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update model: %w", err)
	}
	return nil
}

// ListByOrganization lista modelos de la organización ordenados por nombre.
func (r *ModelRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Model, error) {
	query := `
		SELECT id, organization_id, category_id, name, brand, created_at, updated_at
		FROM models WHERE organization_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()
	var list []*entity.Model
	for rows.Next() {
		var m entity.Model
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.CategoryID, &m.Name, &m.Brand, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un modelo. ErrConflict si un producto todavía lo referencia.
func (r *ModelRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM models WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}
