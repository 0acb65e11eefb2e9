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

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Create persiste una membresía. Constraint único sobre (user_id, organization_id).
func (r *MembershipRepo) Create(m *entity.Membership) error {
	query := `
		INSERT INTO memberships (id, user_id, organization_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.UserID, m.OrganizationID, m.Role, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByUserAndOrg obtiene la membresía del usuario en la organización.
func (r *MembershipRepo) GetByUserAndOrg(userID, orgID string) (*entity.Membership, error) {
	query := `
		SELECT id, user_id, organization_id, role, created_at
		FROM memberships WHERE user_id = $1 AND organization_id = $2`
	var m entity.Membership
	err := r.q.QueryRow(context.Background(), query, userID, orgID).Scan(
		&m.ID, &m.UserID, &m.OrganizationID, &m.Role, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}

// ListByUser membresías del usuario en orden de creación (la primera define
// la organización por defecto de la sesión).
func (r *MembershipRepo) ListByUser(userID string) ([]*entity.Membership, error) {
	query := `
		SELECT id, user_id, organization_id, role, created_at
		FROM memberships WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	return scanMemberships(rows)
}

// ListByOrganization membresías de la organización en orden de creación.
func (r *MembershipRepo) ListByOrganization(orgID string) ([]*entity.Membership, error) {
	query := `
		SELECT id, user_id, organization_id, role, created_at
		FROM memberships WHERE organization_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list memberships by org: %w", err)
	}
	defer rows.Close()
	return scanMemberships(rows)
}

// DeleteByUser elimina todas las membresías del usuario.
func (r *MembershipRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM memberships WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete memberships: %w", err)
	}
	return nil
}

func scanMemberships(rows pgx.Rows) ([]*entity.Membership, error) {
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.OrganizationID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
