package memstore

import (
	"context"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación en memoria de MembershipRepository.
// El orden de inserción es el orden de creación, que es el contrato de ListByUser.
type MembershipRepo struct {
	s *Store
}

// Create inserta una membresía. A lo sumo una fila por (usuario, organización).
func (r *MembershipRepo) Create(m *entity.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.memberships {
		if ex.UserID == m.UserID && ex.OrganizationID == m.OrganizationID {
			return domain.ErrDuplicate
		}
	}
	cp := *m
	r.s.memberships = append(r.s.memberships, &cp)
	return nil
}

// GetByUserAndOrg devuelve la membresía o (nil, nil) si no existe.
func (r *MembershipRepo) GetByUserAndOrg(userID, orgID string) (*entity.Membership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.memberships {
		if m.UserID == userID && m.OrganizationID == orgID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUser membresías del usuario en orden de creación.
func (r *MembershipRepo) ListByUser(userID string) ([]*entity.Membership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Membership
	for _, m := range r.s.memberships {
		if m.UserID == userID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ListByOrganization membresías de la organización en orden de creación.
func (r *MembershipRepo) ListByOrganization(orgID string) ([]*entity.Membership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Membership
	for _, m := range r.s.memberships {
		if m.OrganizationID == orgID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// DeleteByUser elimina todas las membresías del usuario.
func (r *MembershipRepo) DeleteByUser(userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.memberships[:0]
	for _, m := range r.s.memberships {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.s.memberships = kept
	return nil
}

// TxRunner ejecuta el callback sobre el repositorio de membresías con
// semántica transaccional: si fn falla, el estado de membresías se restaura
// al snapshot previo. Equivale al Begin/Rollback del adaptador de PostgreSQL.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunMemberships ejecuta fn y revierte las membresías si devuelve error.
func (r *TxRunner) RunMemberships(_ context.Context, fn func(memberships repository.MembershipRepository) error) error {
	r.s.mu.Lock()
	snapshot := make([]*entity.Membership, len(r.s.memberships))
	for i, m := range r.s.memberships {
		cp := *m
		snapshot[i] = &cp
	}
	r.s.mu.Unlock()

	if err := fn(&MembershipRepo{s: r.s}); err != nil {
		r.s.mu.Lock()
		r.s.memberships = snapshot
		r.s.mu.Unlock()
		return err
	}
	return nil
}
