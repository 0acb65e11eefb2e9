package memstore

import (
	"sort"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

// Create inserta un producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *product
	r.s.products = append(r.s.products, &cp)
	return nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos del producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == product.ID {
			cp := *product
			r.s.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListByOrganization productos de la organización, más recientes primero.
func (r *ProductRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var sorted []*entity.Product
	for _, p := range r.s.products {
		if p.OrganizationID == orgID {
			sorted = append(sorted, p)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if offset >= len(sorted) {
		return nil, nil
	}
	end := len(sorted)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Product, 0, end-offset)
	for _, p := range sorted[offset:end] {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// AdjustQuantity aplica delta bajo el mutex: la misma semántica que el UPDATE
// condicionado del adaptador de PostgreSQL. ok=false si el resultado sería
// negativo; en ese caso la cantidad no cambia.
func (r *ProductRepo) AdjustQuantity(id string, delta int) (int, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			next := p.Quantity + delta
			if next < 0 {
				return p.Quantity, false, nil
			}
			p.Quantity = next
			return next, true, nil
		}
	}
	return 0, false, domain.ErrNotFound
}

// Delete elimina el producto.
func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return nil
}
