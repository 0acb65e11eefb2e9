// Package scope resuelve la organización activa de cada sesión. Toda lectura
// o escritura de entidades de inventario debe parametrizarse por la
// organización resuelta; mientras el alcance esté sin resolver no se emite
// ninguna consulta (la operación se rechaza con ErrScopeUnresolved).
package scope

import (
	"fmt"
	"sync"

	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/access"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// State estados del resolutor para una sesión.
type State int

const (
	// StateUnresolved ninguna organización elegida todavía (estado inicial).
	StateUnresolved State = iota
	// StateResolved organización activa fijada.
	StateResolved
	// StateSwitching cambio de organización en curso (transitorio, mientras se
	// verifica la membresía destino).
	StateSwitching
)

type session struct {
	state State
	orgID string
}

// Resolver mantiene el alcance de organización por usuario. Las sesiones
// viven en memoria; el ciclo de vida lo gobierna la raíz de la aplicación
// (se crean al login y se destruyen con Forget en el logout).
type Resolver struct {
	mu          sync.Mutex
	sessions    map[string]*session
	memberships repository.MembershipRepository
}

// NewResolver construye el resolutor sobre el repositorio de membresías.
func NewResolver(memberships repository.MembershipRepository) *Resolver {
	return &Resolver{
		sessions:    make(map[string]*session),
		memberships: memberships,
	}
}

// Memberships lista las membresías del usuario en orden de creación.
// Ante un error del store devuelve una secuencia vacía junto con el error:
// el llamador decide si reintenta, nunca recibe un pánico del borde.
func (r *Resolver) Memberships(userID string) ([]*entity.Membership, error) {
	list, err := r.memberships.ListByUser(userID)
	if err != nil {
		return []*entity.Membership{}, fmt.Errorf("listar membresías: %w", err)
	}
	return list, nil
}

// ResolveDefault selecciona la organización por defecto si la sesión aún no
// tiene una: la primera membresía en orden de creación. Es la única selección
// implícita; cualquier cambio posterior es un Switch explícito.
// Devuelve la organización activa resultante, o "" si el usuario no tiene
// membresías (la sesión queda sin resolver).
func (r *Resolver) ResolveDefault(userID string) (string, error) {
	r.mu.Lock()
	if s, ok := r.sessions[userID]; ok && s.state == StateResolved {
		orgID := s.orgID
		r.mu.Unlock()
		return orgID, nil
	}
	r.mu.Unlock()

	list, err := r.Memberships(userID)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Revalidar: otro goroutine pudo resolver mientras consultábamos.
	if s, ok := r.sessions[userID]; ok && s.state == StateResolved {
		return s.orgID, nil
	}
	r.sessions[userID] = &session{state: StateResolved, orgID: list[0].OrganizationID}
	return list[0].OrganizationID, nil
}

// Switch cambia la organización activa. Verifica que el usuario tenga una
// membresía en la organización destino y rechaza con ErrForbidden si no la
// tiene; la sesión conserva su alcance anterior si el cambio falla.
func (r *Resolver) Switch(userID, orgID string) error {
	if orgID == "" {
		return domain.ErrInvalidInput
	}

	r.mu.Lock()
	prev, hadPrev := r.sessions[userID]
	var prevCopy session
	if hadPrev {
		prevCopy = *prev
	}
	r.sessions[userID] = &session{state: StateSwitching, orgID: orgID}
	r.mu.Unlock()

	restore := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if hadPrev {
			r.sessions[userID] = &prevCopy
		} else {
			delete(r.sessions, userID)
		}
	}

	m, err := r.memberships.GetByUserAndOrg(userID, orgID)
	if err != nil {
		restore()
		return fmt.Errorf("verificar membresía: %w", err)
	}
	if m == nil {
		restore()
		return domain.ErrForbidden
	}

	r.mu.Lock()
	r.sessions[userID] = &session{state: StateResolved, orgID: orgID}
	r.mu.Unlock()
	return nil
}

// Active devuelve la organización resuelta de la sesión, o ErrScopeUnresolved
// si no hay ninguna (incluido el estado transitorio de cambio).
func (r *Resolver) Active(userID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	if !ok || s.state != StateResolved {
		return "", domain.ErrScopeUnresolved
	}
	return s.orgID, nil
}

// CurrentState expone el estado de la sesión (para diagnóstico y tests).
func (r *Resolver) CurrentState(userID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	if !ok {
		return StateUnresolved
	}
	return s.state
}

// EffectiveRole devuelve el rol efectivo del usuario dentro de la organización
// activa: el rol de la fila de membresía, no el rol global del usuario.
// Sin membresía (no debería ocurrir con Switch validado) el rol es RoleNone.
func (r *Resolver) EffectiveRole(userID string) (access.Role, error) {
	orgID, err := r.Active(userID)
	if err != nil {
		return access.RoleNone, err
	}
	m, err := r.memberships.GetByUserAndOrg(userID, orgID)
	if err != nil {
		return access.RoleNone, fmt.Errorf("verificar membresía: %w", err)
	}
	if m == nil {
		return access.RoleNone, nil
	}
	return access.ParseRole(m.Role), nil
}

// Forget destruye la sesión del usuario (logout).
func (r *Resolver) Forget(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
