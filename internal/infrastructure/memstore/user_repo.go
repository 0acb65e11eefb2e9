package memstore

import (
	"sort"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

// Create inserta un usuario. Email único (como el constraint de la tabla).
func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByEmail devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos del usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, u := range r.s.users {
		if u.ID == user.ID {
			cp := *user
			r.s.users[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// List usuarios ordenados por fecha de creación descendente.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sorted := make([]*entity.User, len(r.s.users))
	copy(sorted, r.s.users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return pageUsers(sorted, limit, offset), nil
}

// Delete elimina el usuario y sus membresías (cascada, como el FK ON DELETE CASCADE).
func (r *UserRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, u := range r.s.users {
		if u.ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			kept := r.s.memberships[:0]
			for _, m := range r.s.memberships {
				if m.UserID != id {
					kept = append(kept, m)
				}
			}
			r.s.memberships = kept
			return nil
		}
	}
	return nil
}

func pageUsers(list []*entity.User, limit, offset int) []*entity.User {
	if offset >= len(list) {
		return nil
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.User, 0, end-offset)
	for _, u := range list[offset:end] {
		cp := *u
		out = append(out, &cp)
	}
	return out
}
