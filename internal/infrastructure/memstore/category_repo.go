package memstore

import (
	"sort"
	"strings"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	s *Store
}

// Create inserta una categoría.
func (r *CategoryRepo) Create(cat *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *cat
	r.s.categories = append(r.s.categories, &cp)
	return nil
}

// GetByID devuelve la categoría o (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos de la categoría existente.
func (r *CategoryRepo) Update(cat *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.categories {
		if c.ID == cat.ID {
			cp := *cat
			r.s.categories[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListByOrganization categorías de la organización ordenadas por nombre.
func (r *CategoryRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var sorted []*entity.Category
	for _, c := range r.s.categories {
		if c.OrganizationID == orgID {
			sorted = append(sorted, c)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	if offset >= len(sorted) {
		return nil, nil
	}
	end := len(sorted)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Category, 0, end-offset)
	for _, c := range sorted[offset:end] {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Delete elimina la categoría. Rechaza con ErrConflict si un modelo o un
// producto todavía la referencia (equivalente al FK RESTRICT, 23503).
func (r *CategoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.models {
		if m.CategoryID == id {
			return domain.ErrConflict
		}
	}
	for _, p := range r.s.products {
		if p.CategoryID == id {
			return domain.ErrConflict
		}
	}
	for i, c := range r.s.categories {
		if c.ID == id {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			return nil
		}
	}
	return nil
}
