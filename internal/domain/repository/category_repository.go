package repository

import "github.com/laqus/deskguard-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(cat *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(cat *entity.Category) error
	ListByOrganization(orgID string, limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}
