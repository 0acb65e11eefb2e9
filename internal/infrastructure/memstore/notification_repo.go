package memstore

import (
	"sort"

	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación en memoria de NotificationRepository.
type NotificationRepo struct {
	s *Store
}

// Create inserta una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *n
	r.s.notifications = append(r.s.notifications, &cp)
	return nil
}

// ListUnreadByOrganization no leídas de la organización, más recientes primero.
func (r *NotificationRepo) ListUnreadByOrganization(orgID string, limit int) ([]*entity.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var sorted []*entity.Notification
	for _, n := range r.s.notifications {
		if n.OrganizationID == orgID && !n.IsRead {
			sorted = append(sorted, n)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]*entity.Notification, 0, len(sorted))
	for _, n := range sorted {
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

// CountUnreadByOrganization cuenta las no leídas de la organización.
func (r *NotificationRepo) CountUnreadByOrganization(orgID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, n := range r.s.notifications {
		if n.OrganizationID == orgID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead marca la notificación como leída. Idempotente.
func (r *NotificationRepo) MarkRead(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return nil
}
