package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type NotificationRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Notification, error)
	FindAll(ctx context.Context, filter *entity.NotificationFilter) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) (*entity.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	CountUnread(ctx context.Context) (int, error)
}
