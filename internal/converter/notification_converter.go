package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

func NotificationToResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:      n.ID,
		Title:   n.Title,
		Message: n.Message,
		Time:    n.Time,
		Read:    n.Read,
		Type:    string(n.Type),
	}
}

func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *NotificationToResponse(&notifications[i])
	}
	return responses
}
