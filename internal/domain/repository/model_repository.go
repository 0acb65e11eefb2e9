package repository

import "github.com/laqus/deskguard-api/internal/domain/entity"

// ModelRepository define el puerto de persistencia para Model (DIP).
type ModelRepository interface {
	Create(model *entity.Model) error
	GetByID(id string) (*entity.Model, error)
	Update(model *entity.Model) error
	ListByOrganization(orgID string, limit, offset int) ([]*entity.Model, error)
	Delete(id string) error
}
