package memstore

import (
	"sort"
	"strings"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación en memoria de OrganizationRepository.
type OrganizationRepo struct {
	s *Store
}

// Create inserta una organización.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *org
	r.s.organizations = append(r.s.organizations, &cp)
	return nil
}

// GetByID devuelve la organización o (nil, nil) si no existe.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.organizations {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos de la organización existente.
func (r *OrganizationRepo) Update(org *entity.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, o := range r.s.organizations {
		if o.ID == org.ID {
			cp := *org
			r.s.organizations[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// List organizaciones ordenadas por nombre.
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sorted := make([]*entity.Organization, len(r.s.organizations))
	copy(sorted, r.s.organizations)
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
	out := make([]*entity.Organization, 0, end-offset)
	for _, o := range sorted[offset:end] {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// Delete elimina la organización. Rechaza con ErrConflict si todavía tiene
// categorías, modelos o productos (equivalente al FK RESTRICT del esquema);
// las membresías sí caen en cascada.
func (r *OrganizationRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.OrganizationID == id {
			return domain.ErrConflict
		}
	}
	for _, m := range r.s.models {
		if m.OrganizationID == id {
			return domain.ErrConflict
		}
	}
	for _, p := range r.s.products {
		if p.OrganizationID == id {
			return domain.ErrConflict
		}
	}
	for i, o := range r.s.organizations {
		if o.ID == id {
			r.s.organizations = append(r.s.organizations[:i], r.s.organizations[i+1:]...)
			kept := r.s.memberships[:0]
			for _, m := range r.s.memberships {
				if m.OrganizationID != id {
					kept = append(kept, m)
				}
			}
			r.s.memberships = kept
			return nil
		}
	}
	return nil
}
