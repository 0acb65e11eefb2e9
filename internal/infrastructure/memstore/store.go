// Package memstore implementa los puertos de persistencia sobre estructuras
// en memoria. Es el Entity Store de fixtures: se selecciona por configuración
// al arranque (STORE_DRIVER=memory) y sirve de backend para los tests de
// casos de uso sin una base de datos real. Nunca se mezcla con el adaptador
// de PostgreSQL en un mismo proceso.
package memstore

import (
	"sync"

	"github.com/laqus/deskguard-api/internal/domain/entity"
)

// Store contiene todas las tablas en memoria bajo un único mutex.
type Store struct {
	mu sync.RWMutex

	users         []*entity.User
	organizations []*entity.Organization
	memberships   []*entity.Membership
	categories    []*entity.Category
	models        []*entity.Model
	products      []*entity.Product
	notifications []*entity.Notification
}

// New crea un Store vacío.
func New() *Store {
	return &Store{}
}

// Users devuelve el adaptador de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Organizations devuelve el adaptador de organizaciones.
func (s *Store) Organizations() *OrganizationRepo { return &OrganizationRepo{s: s} }

// Memberships devuelve el adaptador de membresías.
func (s *Store) Memberships() *MembershipRepo { return &MembershipRepo{s: s} }

// Categories devuelve el adaptador de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Models devuelve el adaptador de modelos.
func (s *Store) Models() *ModelRepo { return &ModelRepo{s: s} }

// Products devuelve el adaptador de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Notifications devuelve el adaptador de notificaciones.
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }
