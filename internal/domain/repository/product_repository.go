package repository

import "github.com/laqus/deskguard-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByOrganization(orgID string, limit, offset int) ([]*entity.Product, error)
	// AdjustQuantity aplica delta de forma atómica solo si el resultado no es
	// negativo. Devuelve la cantidad resultante y ok=false si el ajuste dejaría
	// la cantidad por debajo de cero (en ese caso no modifica nada).
	AdjustQuantity(id string, delta int) (quantity int, ok bool, err error)
	Delete(id string) error
}
