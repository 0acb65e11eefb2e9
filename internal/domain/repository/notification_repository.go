package repository

import "github.com/laqus/deskguard-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListUnreadByOrganization(orgID string, limit int) ([]*entity.Notification, error)
	CountUnreadByOrganization(orgID string) (int, error)
	MarkRead(id string) error
}
