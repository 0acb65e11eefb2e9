package memstore

import (
	"sort"
	"strings"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.ModelRepository = (*ModelRepo)(nil)

// ModelRepo implementación en memoria de ModelRepository.
type ModelRepo struct {
	s *Store
}

// Create inserta un modelo.
func (r *ModelRepo) Create(model *entity.Model) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *model
	r.s.models = append(r.s.models, &cp)
	return nil
}

// GetByID devuelve el modelo o (nil, nil) si no existe.
func (r *ModelRepo) GetByID(id string) (*entity.Model, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.models {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos del modelo existente.
func (r *ModelRepo) Update(model *entity.Model) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, m := range r.s.models {
		if m.ID == model.ID {
			cp := *model
			r.s.models[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListByOrganization modelos de la organización ordenados por nombre.
func (r *ModelRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Model, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var sorted []*entity.Model
	for _, m := range r.s.models {
		if m.OrganizationID == orgID {
			sorted = append(sorted, m)
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
	out := make([]*entity.Model, 0, end-offset)
	for _, m := range sorted[offset:end] {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// Delete elimina el modelo. Rechaza con ErrConflict si un producto todavía
// lo referencia.
func (r *ModelRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ModelID == id {
			return domain.ErrConflict
		}
	}
	for i, m := range r.s.models {
		if m.ID == id {
			r.s.models = append(r.s.models[:i], r.s.models[i+1:]...)
			return nil
		}
	}
	return nil
}
