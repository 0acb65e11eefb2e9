package usecase

import (
	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// Máximo de notificaciones no leídas que muestra la campana del dashboard.
const unreadNotificationLimit = 10

// NotificationUseCase lectura y marcado de notificaciones de la organización activa.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListUnread notificaciones no leídas de la organización, más recientes primero.
func (uc *NotificationUseCase) ListUnread(orgID string) (*dto.NotificationListResponse, error) {
	list, err := uc.repo.ListUnreadByOrganization(orgID, unreadNotificationLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			ProductID: n.ProductID,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Items: items}, nil
}

// MarkRead marca una notificación como leída. Idempotente.
func (uc *NotificationUseCase) MarkRead(id string) error {
	return uc.repo.MarkRead(id)
}
