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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, organization_id, model_id, category_id, name, quantity, min_quantity, value, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.OrganizationID, product.ModelID, product.CategoryID, product.Name,
		product.Quantity, product.MinQuantity, product.Value, product.ExpiryDate,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, organization_id, model_id, category_id, name, quantity, min_quantity, value, expiry_date, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OrganizationID, &p.ModelID, &p.CategoryID, &p.Name,
		&p.Quantity, &p.MinQuantity, &p.Value, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (la cantidad también puede fijarse
// aquí desde el formulario de edición; el ajuste rápido usa AdjustQuantity).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET model_id = $2, category_id = $3, name = $4, quantity = $5, min_quantity = $6, value = $7, expiry_date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ModelID, product.CategoryID, product.Name,
		product.Quantity, product.MinQuantity, product.Value, product.ExpiryDate, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByOrganization lista productos de la organización, más recientes primero.
func (r *ProductRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, organization_id, model_id, category_id, name, quantity, min_quantity, value, expiry_date, created_at, updated_at
		FROM products WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.ModelID, &p.CategoryID, &p.Name,
			&p.Quantity, &p.MinQuantity, &p.Value, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AdjustQuantity aplica delta en un único UPDATE condicionado: la fila solo
// cambia si el resultado no queda negativo, así dos ajustes concurrentes nunca
// producen una cantidad inválida. ok=false cuando el ajuste se descartó.
func (r *ProductRepo) AdjustQuantity(id string, delta int) (int, bool, error) {
	var quantity int
	err := r.q.QueryRow(context.Background(), `
		UPDATE products SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity`, id, delta,
	).Scan(&quantity)
	if err == nil {
		return quantity, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("adjust quantity: %w", err)
	}
	// Sin fila afectada: o el producto no existe, o el ajuste dejaría la
	// cantidad negativa. Distinguir para que el caller trate el segundo como no-op.
	err = r.q.QueryRow(context.Background(),
		`SELECT quantity FROM products WHERE id = $1`, id,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, domain.ErrNotFound
		}
		return 0, false, fmt.Errorf("adjust quantity: %w", err)
	}
	return quantity, false, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
