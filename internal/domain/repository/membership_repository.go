package repository

import "github.com/laqus/deskguard-api/internal/domain/entity"

// MembershipRepository define el puerto de persistencia para Membership (DIP).
// ListByUser devuelve las membresías en orden de creación: la primera es la
// que el resolutor de alcance selecciona por defecto.
type MembershipRepository interface {
	Create(m *entity.Membership) error
	GetByUserAndOrg(userID, orgID string) (*entity.Membership, error)
	ListByUser(userID string) ([]*entity.Membership, error)
	ListByOrganization(orgID string) ([]*entity.Membership, error)
	DeleteByUser(userID string) error
}
